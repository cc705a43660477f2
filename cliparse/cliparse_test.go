// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_KEY", "test-key")
	t.Setenv("LISTING_LIMIT", "")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.ListingLimit != DefaultListingLimit {
		t.Errorf("expected default listing limit %d, got %d", DefaultListingLimit, cfg.ListingLimit)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("LISTING_LIMIT", "")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-key", "k1", "-listing-limit", "10"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
	if cfg.ListingLimit != 10 {
		t.Errorf("expected listing limit 10, got %d", cfg.ListingLimit)
	}
}

func TestParseFlags_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing database URL",
			env:  map[string]string{"DATABASE_URL": "", "ADMIN_KEY": "k"},
		},
		{
			name: "missing admin key",
			env:  map[string]string{"DATABASE_URL": "file:test.db", "ADMIN_KEY": ""},
		},
		{
			name: "unknown database type",
			env:  map[string]string{"DATABASE_URL": "file:test.db", "ADMIN_KEY": "k", "DATABASE_TYPE": "mysql"},
		},
		{
			name: "invalid port",
			env:  map[string]string{"PORT": "abc", "DATABASE_URL": "file:test.db", "ADMIN_KEY": "k"},
		},
		{
			name: "negative listing limit",
			env:  map[string]string{"DATABASE_URL": "file:test.db", "ADMIN_KEY": "k"},
			args: []string{"-listing-limit", "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_KEY", "LISTING_LIMIT"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
