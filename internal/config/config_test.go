package config

import "testing"

func TestParseServerConfig(t *testing.T) {
	cfg, err := ParseServerConfig([]string{"--port", "9000"})
	if err != nil {
		t.Fatalf("ParseServerConfig: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
}

func TestParseServerConfigMissingPort(t *testing.T) {
	if _, err := ParseServerConfig([]string{}); !IsConfigError(err) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
}

func TestParseServerConfigPortOutOfRange(t *testing.T) {
	if _, err := ParseServerConfig([]string{"--port", "70000"}); !IsConfigError(err) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
}

func TestParseClientConfigDefaults(t *testing.T) {
	cfg, err := ParseClientConfig([]string{"--host", "example.com", "--port", "9000", "--forward-port", "8080"})
	if err != nil {
		t.Fatalf("ParseClientConfig: %v", err)
	}
	if cfg.Timeout != defaultTimeoutSeconds {
		t.Errorf("Timeout = %d, want default %d", cfg.Timeout, defaultTimeoutSeconds)
	}
}

func TestParseClientConfigAliases(t *testing.T) {
	cfg, err := ParseClientConfig([]string{"-h", "example.com", "-p", "9000", "-fp", "8080", "-t", "30"})
	if err != nil {
		t.Fatalf("ParseClientConfig: %v", err)
	}
	if cfg.Host != "example.com" || cfg.Port != 9000 || cfg.ForwardPort != 8080 || cfg.Timeout != 30 {
		t.Errorf("cfg = %+v, want host=example.com port=9000 forwardPort=8080 timeout=30", cfg)
	}
}

func TestParseClientConfigMissingHost(t *testing.T) {
	if _, err := ParseClientConfig([]string{"--port", "9000", "--forward-port", "8080"}); !IsConfigError(err) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
}

func TestParseClientConfigZeroTimeout(t *testing.T) {
	_, err := ParseClientConfig([]string{"--host", "example.com", "--port", "9000", "--forward-port", "8080", "--timeout", "0"})
	if !IsConfigError(err) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
}
