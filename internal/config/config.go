// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/avilov/datavault/internal/models"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// JWTSecret is the HMAC secret used to sign bearer tokens.
	JWTSecret string

	// TokenTTLMinutes is the bearer-token validity in minutes.
	TokenTTLMinutes int

	// SystemOwner is the account ID allowed to update the chain height.
	// It is set once at startup and never mutated at runtime.
	SystemOwner string

	// MaxChainHeight is the ceiling for admin height updates.
	MaxChainHeight int64

	// StartingBalance is the token balance granted to new accounts.
	StartingBalance int64

	// TLSCert and TLSKey are optional paths to a server certificate pair;
	// when both are set the server serves HTTPS.
	TLSCert string
	TLSKey  string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.JWTSecret, "s", "", "JWT signing secret")
	flag.IntVar(&options.TokenTTLMinutes, "t", 60, "token validity in minutes")
	flag.StringVar(&options.SystemOwner, "o", "", "system owner account id")
	flag.Int64Var(&options.MaxChainHeight, "m", models.DefaultMaxChainHeight, "chain height ceiling")
	flag.Int64Var(&options.StartingBalance, "b", 1000, "starting balance for new accounts")
	flag.StringVar(&options.TLSCert, "tls-cert", "", "path to TLS certificate")
	flag.StringVar(&options.TLSKey, "tls-key", "", "path to TLS key")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if owner := os.Getenv("SYSTEM_OWNER"); owner != "" {
		options.SystemOwner = owner
	}
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if v, err := strconv.ParseInt(balance, 10, 64); err == nil {
			options.StartingBalance = v
		}
	}

	return options
}
