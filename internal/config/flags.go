package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// keyValues is a flag.Value for "k=v,k2=v2" lists.
type keyValues map[string]string

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a status HTTP address in format [host]:[port]
//	-grpc-address admin gRPC listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-admin-users admin accounts "name=hash,name2=hash2"
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-poll-interval event log poll interval
//	-queue-size async command queue size
//	-server console target address of the gateway
//	-login-attempts console login attempts
//	-add-user-mode console AddUser mode, sync or async
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var queueSize int
	var adapterAddress string
	var loginAttempts int
	var addUserMode string
	adminUsers := keyValues{}

	fs := flag.NewFlagSet("go-exchange-admin", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.Var(&adminUsers, "admin-users", "Admin accounts name=hash,name2=hash2")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Event log poll interval")
	fs.IntVar(&queueSize, "queue-size", 0, "Async command queue size")
	fs.StringVar(&adapterAddress, "server", "", "Admin gateway address")
	fs.IntVar(&loginAttempts, "login-attempts", 0, "Login attempts before giving up")
	fs.StringVar(&addUserMode, "add-user-mode", "", "AddUser mode: sync or async")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			GRPCAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			LoginAttempts:  loginAttempts,
			AddUserMode:    addUserMode,
		},
		Workers: Workers{
			PollInterval: pollInterval,
			QueueSize:    queueSize,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(adminUsers) > 0 {
		cfg.App.AdminUsers = adminUsers
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; otherwise the host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func (kv keyValues) String() string {
	pairs := make([]string, 0, len(kv))
	for k := range kv {
		pairs = append(pairs, k+"=***")
	}
	return strings.Join(pairs, ",")
}

func (kv keyValues) Set(s string) error {
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" || value == "" {
			return fmt.Errorf("need entry in a form `name=value`, got %q", pair)
		}
		kv[key] = value
	}
	return nil
}
