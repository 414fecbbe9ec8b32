package config

import "fmt"

// ServerConfig is the gateway configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Workers Workers
}

// GetServerConfig builds and validates the gateway view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}
