package config

import (
	"errors"
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_PORT", "DB_NAME"} {
		// t.Setenv registers the restore, os.Unsetenv makes the key absent.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	expected := &Config{
		DBHost:     "localhost",
		DBUser:     "root",
		DBPassword: "",
		DBPort:     "3306",
		DBName:     "shopee_affiliate",
	}
	if *cfg != *expected {
		t.Errorf("Load: expected %+v, got %+v", expected, cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "setup")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "33060")
	t.Setenv("DB_NAME", "affiliate_staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.DBHost != "db.internal" || cfg.DBUser != "setup" || cfg.DBPassword != "secret" ||
		cfg.DBPort != "33060" || cfg.DBName != "affiliate_staging" {
		t.Errorf("Load: environment overrides not applied: %+v", cfg)
	}
}

func TestLoadBadPort(t *testing.T) {
	testCases := []struct {
		name string
		port string
	}{
		{name: "Alphabetic port", port: "not-a-port"},
		{name: "Mixed port", port: "3306x"},
	}

	for _, testCase := range testCases {
		clearEnv(t)
		t.Setenv("DB_PORT", testCase.port)

		_, err := Load()
		if err == nil {
			t.Errorf("%s, Load: expected an error", testCase.name)
			continue
		}

		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s, Load: expected *ConfigError, got %T", testCase.name, err)
			continue
		}
		if cfgErr.Key != "DB_PORT" || cfgErr.Value != testCase.port {
			t.Errorf("%s, Load: unexpected error detail: %+v", testCase.name, cfgErr)
		}
	}
}
