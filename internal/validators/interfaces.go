// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks admin service requests before they reach the
// service layer.
//
// A [Validator] accepts any supported request value and an optional list of
// field names restricting which rules run. Rejections wrap the sentinel
// errors of this package so transports can match them with errors.Is.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
