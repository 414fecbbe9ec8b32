// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.GRPCAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.LoginAttempts < 1 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Adapter.AddUserMode {
	case AddUserModeSync, AddUserModeAsync:
	default:
		return ErrInvalidAddUserMode
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if len(cfg.App.AdminUsers) == 0 {
		return ErrNoAdminUsers
	}

	if cfg.App.LoginRate <= 0 || cfg.App.LoginBurst < 1 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.GRPCAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.QueueSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
