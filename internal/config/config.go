// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// console and the gateway. It is populated by merging environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the admin accounts and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the event log database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the gateway listen addresses.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the console's view of the gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the gateway background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration of the gateway.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminUsers maps a username to its argon2id password hash as printed by
	// cmd/passhash.
	// Env: APP_ADMIN_USERS="alice=<salt>:<hash>,bob=<salt>:<hash>"
	AdminUsers map[string]string `env:"ADMIN_USERS" envKeyValSeparator:"="`

	// LoginRate is the number of login attempts per second the gateway
	// accepts for one operator. LoginBurst is the bucket size.
	// Env: APP_LOGIN_RATE, APP_LOGIN_BURST
	LoginRate  float64 `env:"LOGIN_RATE"`
	LoginBurst int     `env:"LOGIN_BURST"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds gateway listen addresses.
type Server struct {
	// HTTPAddress is the status endpoint address. Empty disables it.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the admin service address, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single unary call on the gateway.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the console's connection settings.
type Adapter struct {
	// GRPCAddress is the gateway target, any grpc.NewClient target is accepted.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every unary call made by the console.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LoginAttempts is how many times the operator may retry a failed login.
	// Env: ADAPTER_LOGIN_ATTEMPTS
	LoginAttempts int `env:"LOGIN_ATTEMPTS"`

	// AddUserMode is "sync" or "async".
	// Env: ADAPTER_ADD_USER_MODE
	AddUserMode string `env:"ADD_USER_MODE"`
}

// Workers holds configuration for gateway background workers.
type Workers struct {
	// PollInterval is how often an event stream tails the event log.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// QueueSize is the capacity of the asynchronous command queue.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// GetStructuredConfig loads and merges the configuration from the process
// environment, os.Args, the JSON file and defaults, in that priority.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
