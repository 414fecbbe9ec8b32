package config

import (
	"fmt"
	"time"
)

// AddUserMode selects which AddUser shape the console uses.
type AddUserMode string

const (
	// AddUserModeSync waits for the gateway's {success, message} answer.
	AddUserModeSync AddUserMode = "sync"
	// AddUserModeAsync fires the command; the outcome arrives as an event.
	AddUserModeAsync AddUserMode = "async"
)

// ClientAdapter holds network settings used by the console transport layer.
type ClientAdapter struct {
	// GRPCAddress is the gateway target.
	GRPCAddress string
	// RequestTimeout is the timeout of every unary call.
	RequestTimeout time.Duration
	// LoginAttempts is how many failed logins end the process.
	LoginAttempts int
	// AddUserMode selects sync or fire-and-forget AddUser.
	AddUserMode AddUserMode
}

// ClientConfig is the console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the console view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			LoginAttempts:  cfg.Adapter.LoginAttempts,
			AddUserMode:    AddUserMode(cfg.Adapter.AddUserMode),
		},
	}

	return clientCfg, clientCfg.validate()
}
