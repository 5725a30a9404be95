package cli

import (
	"testing"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/config"
)

func hasSubcommand(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

func TestRegisteredCommands(t *testing.T) {
	for _, name := range []string{
		"browse", "admin", "list", "show", "add", "update",
		"delete", "chat", "seed", "health", "version", "config",
	} {
		if !hasSubcommand(name) {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	formatFlag := rootCmd.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	if rootCmd.PersistentFlags().Lookup("api-url") == nil {
		t.Fatal("expected --api-url flag to exist")
	}
}

func TestApplyConfigKey(t *testing.T) {
	var fc config.FileConfig

	if err := applyConfigKey(&fc, "api-url", "http://myhost:9000"); err != nil {
		t.Fatalf("api-url: %v", err)
	}
	if err := applyConfigKey(&fc, "log-file", "/tmp/r.log"); err != nil {
		t.Fatalf("log-file: %v", err)
	}
	if err := applyConfigKey(&fc, "log-level", "debug"); err != nil {
		t.Fatalf("log-level: %v", err)
	}

	if fc.APIBaseURL != "http://myhost:9000" || fc.LogFile != "/tmp/r.log" || fc.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", fc)
	}

	if err := applyConfigKey(&fc, "bogus", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestConfigSetRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("REALTY_API_URL", "")

	fc, err := config.ReadFileConfig()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := applyConfigKey(&fc, "api-url", "http://persisted:8000"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := config.SaveFileConfig(fc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := config.Load()
	if loaded.APIBaseURL != "http://persisted:8000" {
		t.Errorf("APIBaseURL = %q, want persisted value", loaded.APIBaseURL)
	}
}
