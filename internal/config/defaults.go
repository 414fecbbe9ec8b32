package config

import "time"

const (
	defaultAdapterAddress = "localhost:9090"
	defaultRequestTimeout = 10 * time.Second
	defaultLoginAttempts  = 3
	defaultAddUserMode    = string(AddUserModeSync)

	defaultServerGRPCAddress = "0.0.0.0:9090"
	defaultDSN               = "exchange_admin.db"
	defaultTokenIssuer       = "go-exchange-admin"
	defaultTokenDuration     = 12 * time.Hour
	defaultLoginRate         = 1.0
	defaultLoginBurst        = 5

	defaultPollInterval = 50 * time.Millisecond
	defaultQueueSize    = 64
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LoginRate:     defaultLoginRate,
			LoginBurst:    defaultLoginBurst,
		},
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Server: Server{
			GRPCAddress:    defaultServerGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			GRPCAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
			LoginAttempts:  defaultLoginAttempts,
			AddUserMode:    defaultAddUserMode,
		},
		Workers: Workers{
			PollInterval: defaultPollInterval,
			QueueSize:    defaultQueueSize,
		},
	}
}
