// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver credential store driver (postgres, sqlite, memory)
//	-c/-config json file path with configs
//	-auth-type authentication strategy
//	-session-name session cookie name
//	-session-duration session lifetime (e.g., "1h", "30m")
//	-session-store session backend (memory, database, redis)
//	-excluded-paths comma separated list of paths bypassing the access gate
//	-redis-address redis server address
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval expired session sweep interval
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-session-auth", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var authType, sessionName, sessionStore, excludedPaths string
	var sessionDuration time.Duration
	var redisAddress string
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Credential store driver: postgres, sqlite, memory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&authType, "auth-type", "", "Authentication strategy: none, basic, session")
	fs.StringVar(&sessionName, "session-name", "", "Session cookie name")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 1h, 30m)")
	fs.StringVar(&sessionStore, "session-store", "", "Session store: memory, database, redis")
	fs.StringVar(&excludedPaths, "excluded-paths", "", "Comma separated paths bypassing authentication")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired session sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Auth: Auth{
			Type:            authType,
			SessionName:     sessionName,
			SessionDuration: sessionDuration,
			SessionStore:    sessionStore,
			ExcludedPaths:   splitList(excludedPaths),
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
