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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-d database DSN (SQLite file)
//	-c/-config json file path with configs
//	-hash-key passcode hash pepper
//	-poll-interval lockout countdown refresh (e.g. "1s")
//	-biometric-agent biometric agent base URL
//	-biometric-timeout biometric agent request timeout (e.g. "60s")
//	-sign-key shared key for signed challenge results
//	-agent-address agent listen address in format [host]:[port]
//	-agent-kind simulated biometric kind
//	-agent-result scripted biometric result
func parseFlags(args []string) (*StructuredConfig, error) {
	var agentAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var pollInterval time.Duration
	var biometricAgent string
	var biometricTimeout time.Duration
	var signKey string
	var agentKind string
	var agentResult string

	fs := flag.NewFlagSet("wallet-lock", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&agentAddress, "agent-address", "Agent listen address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Passcode hash pepper")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Lockout countdown refresh interval")
	fs.StringVar(&biometricAgent, "biometric-agent", "", "Biometric agent base URL")
	fs.DurationVar(&biometricTimeout, "biometric-timeout", 0, "Biometric agent request timeout")
	fs.StringVar(&signKey, "sign-key", "", "Challenge result signing key")
	fs.StringVar(&agentKind, "agent-kind", "", "Simulated biometric kind")
	fs.StringVar(&agentResult, "agent-result", "", "Scripted biometric result")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Lock: Lock{
			PollInterval: pollInterval,
		},
		Biometric: Biometric{
			AgentAddress:   biometricAgent,
			RequestTimeout: biometricTimeout,
			SignKey:        signKey,
		},
		Agent: Agent{
			Address: agentAddress.String(),
			Kind:    agentKind,
			Result:  agentResult,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
