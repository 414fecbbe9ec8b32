package service

import (
	"fmt"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/store"
)

type Services struct {
	AuthService     AuthService
	ExchangeService ExchangeService
	EventService    EventService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     authService,
		ExchangeService: NewExchangeService(storages.ExchangeUserRepository, storages.EventRepository, cfg.Workers, logger),
		EventService:    NewEventService(storages.EventRepository, cfg.Workers, logger),
		AppInfoService:  appInfoService,
	}, nil
}
