// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive admin console runtime.
//
// It wires the login prompt, the authenticated session, the background event
// consumer and the command loop into a single process lifecycle.
package client
