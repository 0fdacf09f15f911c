// Package config parses the flag-based CLI surface for both the server
// and client processes: one flag.NewFlagSet per subcommand, with
// short/long alias pairs.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ConfigError reports the first violated CLI constraint:
// missing/invalid flags, fatal at startup.
type ConfigError struct {
	Flag   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: --%s: %s", e.Flag, e.Reason)
}

// AuditDSNEnvVar is the optional, non-flag escape hatch for the
// pairing audit trail: its absence is not a ConfigError, unlike every
// flag below.
const AuditDSNEnvVar = "HOPGATE_AUDIT_DSN"

// AuditDSN returns the configured audit store DSN, or "" if unset.
func AuditDSN() string {
	return os.Getenv(AuditDSNEnvVar)
}

// AdminAPIAddrEnvVar and AdminAPIKeyEnvVar gate the optional read-only
// admin HTTP API; both are unset by default, keeping the admin surface
// off unless explicitly configured.
const (
	AdminAPIAddrEnvVar = "HOPGATE_ADMIN_ADDR"
	AdminAPIKeyEnvVar  = "HOPGATE_ADMIN_API_KEY"
)

// AdminAPIAddr returns the configured admin API listen address, or ""
// if the admin API should stay disabled.
func AdminAPIAddr() string {
	return os.Getenv(AdminAPIAddrEnvVar)
}

// AdminAPIKey returns the configured admin API bearer token.
func AdminAPIKey() string {
	return os.Getenv(AdminAPIKeyEnvVar)
}

// ServerConfig is the rendezvous server process's configuration.
type ServerConfig struct {
	Port int
}

// ParseServerConfig parses args (excluding the program name) into a
// ServerConfig: `server --port <P>` (alias `-p`).
func ParseServerConfig(args []string) (*ServerConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: server --port <P>")
		fs.PrintDefaults()
	}

	var port int
	fs.IntVar(&port, "port", 0, "port to listen for rendezvous control connections on")
	fs.IntVar(&port, "p", 0, "alias for --port")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &ServerConfig{Port: port}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects a missing --port or one outside 1..65535.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return &ConfigError{Flag: "port", Reason: "required, must be in 1..65535"}
	}
	return nil
}

// ClientConfig is the rendezvous client process's configuration.
type ClientConfig struct {
	Host        string
	Port        int
	ForwardPort int
	Timeout     int // seconds
}

// defaultTimeoutSeconds is the client's dial retry budget default.
const defaultTimeoutSeconds = 60

// ParseClientConfig parses args (excluding the program name) into a
// ClientConfig: `client --host <H> --port <P> --forward-port <FP>
// [--timeout <sec>]` (aliases `-h -p -fp -t`).
func ParseClientConfig(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: client --host <H> --port <P> --forward-port <FP> [--timeout <sec>]")
		fs.PrintDefaults()
	}

	var host string
	var port, forwardPort, timeout int

	fs.StringVar(&host, "host", "", "rendezvous server host")
	fs.StringVar(&host, "h", "", "alias for --host")
	fs.IntVar(&port, "port", 0, "rendezvous server port")
	fs.IntVar(&port, "p", 0, "alias for --port")
	fs.IntVar(&forwardPort, "forward-port", 0, "local port to forward to/from")
	fs.IntVar(&forwardPort, "fp", 0, "alias for --forward-port")
	fs.IntVar(&timeout, "timeout", defaultTimeoutSeconds, "per-endpoint dial retry budget in seconds")
	fs.IntVar(&timeout, "t", defaultTimeoutSeconds, "alias for --timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{Host: host, Port: port, ForwardPort: forwardPort, Timeout: timeout}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects a missing or malformed required flag.
func (c *ClientConfig) Validate() error {
	if c.Host == "" {
		return &ConfigError{Flag: "host", Reason: "required"}
	}
	if c.Port < 1 || c.Port > 65535 {
		return &ConfigError{Flag: "port", Reason: "required, must be in 1..65535"}
	}
	if c.ForwardPort < 1 || c.ForwardPort > 65535 {
		return &ConfigError{Flag: "forward-port", Reason: "required, must be in 1..65535"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Flag: "timeout", Reason: "must be a positive number of seconds"}
	}
	return nil
}

// IsConfigError reports whether err is (or wraps) a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
