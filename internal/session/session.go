// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session is the authenticated operation surface of the console.
//
// [Login] turns operator input into an [auth.Credential]; [New] binds that
// credential to a fresh connection through [auth.Interceptor], so none of
// the Session operations ever see the raw token. A Session is immutable
// after New and may be used from several goroutines at once.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
	"github.com/MKhiriev/go-exchange-admin/internal/auth"
	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// Session owns the authenticated connection.
type Session struct {
	conn        io.Closer
	adapter     adapter.AdminAdapter
	cred        auth.Credential
	addUserMode config.AddUserMode

	closeOnce sync.Once
	closeErr  error

	logger *logger.Logger
}

type options struct {
	dialOptions []grpc.DialOption
}

// Option customises New.
type Option func(*options)

// WithDialOptions appends grpc dial options after the authentication
// interceptors, e.g. a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) {
		o.dialOptions = append(o.dialOptions, opts...)
	}
}

// New dials cfg.GRPCAddress with cred bound to every call.
func New(cfg config.ClientAdapter, cred auth.Credential, log *logger.Logger, opts ...Option) (*Session, error) {
	if cred.IsZero() {
		return nil, ErrNoCredential
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	dialOpts := append(auth.NewInterceptor(cred).DialOptions(), o.dialOptions...)
	conn, err := adapter.Dial(cfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}

	s := newSession(adapter.NewGRPCAdminAdapter(conn, cfg, log), cfg.AddUserMode, log)
	s.conn = conn
	s.cred = cred

	return s, nil
}

func newSession(a adapter.AdminAdapter, mode config.AddUserMode, log *logger.Logger) *Session {
	if mode == "" {
		mode = config.AddUserModeSync
	}
	return &Session{adapter: a, addUserMode: mode, logger: log}
}

// AddUserMode reports which AddUser shape this session uses.
func (s *Session) AddUserMode() config.AddUserMode {
	return s.addUserMode
}

// Ping checks gateway liveness and returns its reply.
func (s *Session) Ping(ctx context.Context) (string, error) {
	msg, err := s.adapter.Ping(ctx)
	if err != nil {
		return "", mapError(err)
	}
	return msg, nil
}

// StopEngine requests an engine stop. true means the gateway accepted the
// request, not that the engine has already stopped.
func (s *Session) StopEngine(ctx context.Context) (bool, error) {
	accepted, err := s.adapter.StopEngine(ctx)
	if err != nil {
		return false, mapError(err)
	}

	s.logger.Info().Bool("accepted", accepted).Msg("stop engine requested")
	return accepted, nil
}

// ParseUID parses operator input as a base-10 int64 user id.
func ParseUID(raw string) (int64, error) {
	uid, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: user id must be an integer, got %q", ErrValidationFailure, raw)
	}
	return uid, nil
}

// AddUser validates rawUID and provisions the user. Invalid input never
// reaches the gateway.
//
// In sync mode the result carries the gateway's verdict. In async mode the
// result only says the command was queued; the verdict arrives later as an
// AdminEvent.
func (s *Session) AddUser(ctx context.Context, rawUID string) (models.AddUserResult, error) {
	uid, err := ParseUID(rawUID)
	if err != nil {
		return models.AddUserResult{}, err
	}

	if s.addUserMode == config.AddUserModeAsync {
		if err := s.adapter.AddUserAsync(ctx, uid); err != nil {
			return models.AddUserResult{}, mapError(err)
		}
		return models.AddUserResult{UID: uid, Accepted: true, Async: true, Message: "queued, result will follow as an event"}, nil
	}

	res, err := s.adapter.AddUser(ctx, uid)
	if err != nil {
		return models.AddUserResult{}, mapError(err)
	}
	return res, nil
}

// SubscribeEvents returns the admin event sequence starting at fromIndex.
//
// Nothing is opened until the sequence is ranged over. Events are yielded in
// arrival order. A clean close by the gateway ends the sequence without an
// error; any failure is yielded once and ends it. Stopping the range early
// closes the stream. Each range opens a new subscription.
func (s *Session) SubscribeEvents(ctx context.Context, fromIndex int64) iter.Seq2[models.AdminEvent, error] {
	return func(yield func(models.AdminEvent, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stream, err := s.adapter.SubscribeAdminEvents(ctx, fromIndex)
		if err != nil {
			yield(models.AdminEvent{}, mapError(err))
			return
		}

		for {
			event, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(models.AdminEvent{}, mapError(err))
				return
			}
			if !yield(event, nil) {
				return
			}
		}
	}
}

// Close releases the authenticated connection. It is safe to call more
// than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.conn != nil {
			s.closeErr = s.conn.Close()
		}
	})
	return s.closeErr
}
