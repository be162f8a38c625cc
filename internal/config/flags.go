// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-static-dir directory served instead of the embedded site
//	-request-timeout inbound request timeout (e.g. "30s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "5s")
//	-rate-limit requests per second on chat and contact endpoints
//	-rate-burst token bucket size for -rate-limit
//	-site site base URL used by the client
//	-loader-path path of the loader animation document
//	-min-display minimum loading screen time (e.g. "800ms")
//	-lock-loader keep the loading screen open
//	-concurrency parallel asset requests per phase
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-folio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath, staticDir string
	var requestTimeout, shutdownTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var siteURL, loaderPath, logLevel string
	var minDisplay time.Duration
	var lockLoader bool
	var concurrency int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&staticDir, "static-dir", "", "Directory with the built site")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Shutdown timeout (e.g., 5s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second on chat and contact endpoints")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Burst size for -rate-limit")
	fs.StringVar(&siteURL, "site", "", "Site base URL")
	fs.StringVar(&loaderPath, "loader-path", "", "Loader animation path")
	fs.DurationVar(&minDisplay, "min-display", 0, "Minimum loading screen time (e.g., 800ms)")
	fs.BoolVar(&lockLoader, "lock-loader", false, "Keep the loading screen open")
	fs.IntVar(&concurrency, "concurrency", 0, "Parallel asset requests per phase")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			StaticDir:       staticDir,
			RateLimit:       rateLimit,
			RateBurst:       rateBurst,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			SiteURL: siteURL,
		},
		Assets: Assets{
			LoaderPath:  loaderPath,
			MinDisplay:  minDisplay,
			LockLoader:  lockLoader,
			Concurrency: concurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; any other host must be "localhost" or a
// valid IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
