// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc holds the wire contract of the exchange admin gateway: request
// and response messages, the gRPC service descriptor with its client and
// server bindings, the metadata keys both sides agree on, and the JSON codec
// the messages travel in.
//
// The layout follows what protoc-gen-go-grpc emits so that the rest of the
// code base does not care that the descriptor is maintained by hand.
package rpc
