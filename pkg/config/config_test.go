package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ormasoftchile/xmlvet/pkg/report"
)

func TestParseStrictRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("fetch_timeout: 5s\nbogus: true\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("expected error naming the unknown field, got: %v", err)
	}
}

func TestParseEmptyConfig(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty config should parse: %v", err)
	}
	if d, _ := cfg.Timeout(); d != 10*time.Second {
		t.Errorf("expected 10s default timeout, got %v", d)
	}
	if cfg.ColorMode() != report.ModeAuto {
		t.Errorf("expected auto color mode, got %v", cfg.ColorMode())
	}
}

func TestLoadMissingDefaultIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default config should not error: %v", err)
	}
	if cfg.Strict {
		t.Error("zero config should not be strict")
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("explicitly requested config must exist")
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")
	content := "fetch_timeout: 30s\ncolor: never\nstrict: true\nxsd: schemas/base.xsd\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d, _ := cfg.Timeout(); d != 30*time.Second {
		t.Errorf("expected 30s, got %v", d)
	}
	if cfg.ColorMode() != report.ModeNever {
		t.Errorf("expected never mode, got %v", cfg.ColorMode())
	}
	if !cfg.Strict || cfg.XSD != "schemas/base.xsd" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestValidateRejectsBadEnum(t *testing.T) {
	errs := Validate(&Config{Color: "blue"})
	if len(errs) == 0 {
		t.Fatal("expected enum violation for color: blue")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e.Error(), "color") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error located at color, got: %v", errs)
	}
}

func TestValidateRejectsBadTimeoutPattern(t *testing.T) {
	if errs := Validate(&Config{FetchTimeout: "soon"}); len(errs) == 0 {
		t.Fatal("expected pattern violation for fetch_timeout: soon")
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if errs := Validate(&Config{}); len(errs) != 0 {
		t.Fatalf("empty config should validate, got: %v", errs)
	}
	if errs := Validate(&Config{FetchTimeout: "500ms", Color: "always"}); len(errs) != 0 {
		t.Fatalf("valid config should validate, got: %v", errs)
	}
}

func TestGenerateJSONSchema(t *testing.T) {
	data, err := GenerateJSONSchema()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{"fetch_timeout", "color", "strict"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("schema missing property %q", want)
		}
	}
}
