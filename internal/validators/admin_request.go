package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
)

// Field names accepted by [AdminRequestValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldUID      = "uid"
)

// AdminRequestValidator validates login and user provisioning requests.
// Value and pointer forms are both accepted.
type AdminRequestValidator struct {
}

func NewAdminRequestValidator() Validator {
	return &AdminRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields every rule
// of that type runs.
func (v *AdminRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case rpc.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *rpc.LoginRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLoginRequest(ctx, *value, fields...)

	case rpc.AddUserRequest:
		return v.validateAddUserRequest(ctx, value, fields...)
	case *rpc.AddUserRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAddUserRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AdminRequestValidator) validateLoginRequest(_ context.Context, req rpc.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AdminRequestValidator) validateAddUserRequest(_ context.Context, req rpc.AddUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID}
	}

	for _, field := range fields {
		switch field {
		case FieldUID:
			if req.UID <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidUID, req.UID)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
