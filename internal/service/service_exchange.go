// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/store"
	"github.com/MKhiriev/go-exchange-admin/internal/utils"
	"github.com/MKhiriev/go-exchange-admin/internal/workers"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// Engine result names published as event messages.
const (
	msgResultSuccess           = "SUCCESS"
	msgResultUserAlreadyExists = "USER_MGMT_USER_ALREADY_EXISTS"
)

type addUserCommand struct {
	uid      int64
	operator string
}

type exchangeService struct {
	users  store.ExchangeUserRepository
	events store.EventRepository

	queue   *workers.Queue[addUserCommand]
	stopped atomic.Bool

	logger *logger.Logger
}

// NewExchangeService constructs an ExchangeService. Asynchronous commands
// are buffered up to cfg.QueueSize and executed by Run.
func NewExchangeService(users store.ExchangeUserRepository, events store.EventRepository, cfg config.Workers, logger *logger.Logger) ExchangeService {
	s := &exchangeService{
		users:  users,
		events: events,
		logger: logger,
	}
	s.queue = workers.NewQueue(cfg.QueueSize, s.handleAsync)

	return s
}

// Run implements [workers.Worker]. It executes queued commands until the
// engine is stopped and the queue drained, or ctx is done.
func (s *exchangeService) Run(ctx context.Context) error {
	return s.queue.Run(ctx)
}

// Running implements [ExchangeService].
func (s *exchangeService) Running() bool {
	return !s.stopped.Load()
}

// StopEngine implements [ExchangeService].
func (s *exchangeService) StopEngine(ctx context.Context) error {
	if !s.stopped.CompareAndSwap(false, true) {
		return nil
	}

	s.queue.Close()
	logger.FromContext(ctx).Info().Msg("engine stopped")

	return nil
}

// AddUser implements [ExchangeService].
func (s *exchangeService) AddUser(ctx context.Context, uid int64) (models.CommandResult, error) {
	if err := s.checkCommand(uid); err != nil {
		return models.CommandResult{}, err
	}

	operator, _ := utils.GetUsernameFromContext(ctx)

	return s.execute(ctx, addUserCommand{uid: uid, operator: operator})
}

// AddUserAsync implements [ExchangeService].
func (s *exchangeService) AddUserAsync(ctx context.Context, uid int64) error {
	if err := s.checkCommand(uid); err != nil {
		return err
	}

	operator, _ := utils.GetUsernameFromContext(ctx)

	switch err := s.queue.Submit(addUserCommand{uid: uid, operator: operator}); {
	case errors.Is(err, workers.ErrQueueFull):
		return ErrCommandQueueFull
	case errors.Is(err, workers.ErrQueueClosed):
		return ErrEngineStopped
	case err != nil:
		return err
	}

	logger.FromContext(ctx).Debug().Int64("uid", uid).Msg("add user command queued")
	return nil
}

func (s *exchangeService) checkCommand(uid int64) error {
	if uid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidUID, uid)
	}
	if s.stopped.Load() {
		return ErrEngineStopped
	}
	return nil
}

func (s *exchangeService) handleAsync(ctx context.Context, cmd addUserCommand) {
	if _, err := s.execute(ctx, cmd); err != nil {
		s.logger.Err(err).Int64("uid", cmd.uid).Str("operator", cmd.operator).Msg("async add user failed")
	}
}

// execute creates the user and appends the outcome to the event log.
func (s *exchangeService) execute(ctx context.Context, cmd addUserCommand) (models.CommandResult, error) {
	result := models.CommandResult{UID: cmd.uid}

	_, err := s.users.CreateUser(ctx, models.ExchangeUser{UID: cmd.uid, CreatedBy: cmd.operator})
	switch {
	case err == nil:
		result.ResultCode = models.ResultCodeSuccess
		result.Message = msgResultSuccess
	case errors.Is(err, store.ErrUserAlreadyExists):
		result.ResultCode = models.ResultCodeUserAlreadyExists
		result.Message = msgResultUserAlreadyExists
	default:
		return models.CommandResult{}, fmt.Errorf("error creating user %d: %w", cmd.uid, err)
	}

	event, err := s.events.AppendEvent(ctx, result)
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("error publishing result of user %d: %w", cmd.uid, err)
	}

	s.logger.Info().Stringer("event", event).Str("operator", cmd.operator).Msg("add user executed")

	return result, nil
}
