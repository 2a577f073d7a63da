package app

import (
	"path/filepath"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("FASTWISE_CONFIG_PATH", "/etc/fastwise.toml")
		t.Setenv("FASTWISE_HOME", "/srv/fastwise")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if defaults["config_path"] != "/etc/fastwise.toml" {
			t.Errorf("config path %q", defaults["config_path"])
		}
		if defaults["base_dir"] != "/srv/fastwise" {
			t.Errorf("base dir %q", defaults["base_dir"])
		}
		if defaults["log_dir"] != filepath.Join("/srv/fastwise", "log") {
			t.Errorf("log dir %q", defaults["log_dir"])
		}
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		t.Setenv("FASTWISE_CONFIG_PATH", "")
		t.Setenv("FASTWISE_HOME", "")
		t.Setenv("HOME", "/home/tester")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if defaults["config_path"] != "/home/tester/.config/fastwise.toml" {
			t.Errorf("config path %q", defaults["config_path"])
		}
		if defaults["base_dir"] != "/home/tester/.local/share/fastwise" {
			t.Errorf("base dir %q", defaults["base_dir"])
		}
	})
}
