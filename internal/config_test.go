package internal

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := ioutil.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "log_level: Debug\nlog_format: json\ncolor: false\ntrace: true\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || !cfg.Trace {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.ColorEnabled() {
		t.Error("colour was disabled in the file")
	}
	if !filepath.IsAbs(cfg.Path) {
		t.Errorf("path should be absolute, got %s", cfg.Path)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, content := range []string{"", "trace: false\n"} {
		cfg, err := LoadConfig(writeConfig(t, content))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", content, err)
		}
		if cfg.LogLevel != "warning" || cfg.LogFormat != "text" {
			t.Errorf("%q: defaults should be kept, got %+v", content, cfg)
		}
		if !cfg.ColorEnabled() {
			t.Errorf("%q: colour is on unless disabled", content)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"log_level: loud\n":   "loud",
		"log_format: xml\n":   "xml",
		"verbosity: 3\n":      "verbosity",
		"log_level: [a, b]\n": "config: parse",
	}
	for content, fragment := range cases {
		_, err := LoadConfig(writeConfig(t, content))
		if err == nil {
			t.Errorf("%q: expected an error", content)
			continue
		}
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("%q: error %q should mention %q", content, err, fragment)
		}
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected a not exist error, got %v", err)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Error("an empty path should be rejected")
	}
}
