package config

import (
	"reflect"
	"testing"

	"github.com/ironsheep/ocrscan/internal/ocr"
	"github.com/ironsheep/ocrscan/internal/search"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.MaxImageBytes != 50*1024*1024 {
		t.Errorf("MaxImageBytes = %d, want 50MiB", cfg.MaxImageBytes)
	}
	if cfg.Policy != search.PolicyExact {
		t.Errorf("Policy = %v, want exact", cfg.Policy)
	}
	if cfg.Level != ocr.LevelLine {
		t.Errorf("Level = %v, want line", cfg.Level)
	}
	if !reflect.DeepEqual(cfg.LanguageList, []string{"eng"}) {
		t.Errorf("LanguageList = %v", cfg.LanguageList)
	}
	if cfg.Source != SourcePrompt || cfg.Workers != 1 || cfg.Window != 4 || cfg.Collocations != 20 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.DispersionWords, []string{"it", "a", "time"}) {
		t.Errorf("DispersionWords = %v", cfg.DispersionWords)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("OCRSCAN_LOG_LEVEL", "debug")
	t.Setenv("OCRSCAN_LANGUAGES", "eng+deu")
	t.Setenv("OCRSCAN_EXTENSION_POLICY", "fold")
	t.Setenv("OCRSCAN_MAX_IMAGE_SIZE", "2MB")
	t.Setenv("OCRSCAN_WORKERS", "4")
	t.Setenv("OCRSCAN_DETECTION_LEVEL", "word")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !reflect.DeepEqual(cfg.LanguageList, []string{"eng", "deu"}) {
		t.Errorf("LanguageList = %v", cfg.LanguageList)
	}
	if cfg.Policy != search.PolicyFold {
		t.Errorf("Policy = %v", cfg.Policy)
	}
	if cfg.MaxImageBytes != 2_000_000 {
		t.Errorf("MaxImageBytes = %d", cfg.MaxImageBytes)
	}
	if cfg.Workers != 4 || cfg.Level != ocr.LevelWord {
		t.Errorf("Workers = %d, Level = %v", cfg.Workers, cfg.Level)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("OCRSCAN_EXTENSION_POLICY", "fold")

	cfg, err := Load([]string{
		"--extensions", "sniff",
		"--source", "flags",
		"--dir", "/data",
		"-k", "apple",
		"--dispersion", "it,was",
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Policy != search.PolicySniff {
		t.Errorf("Policy = %v, want sniff", cfg.Policy)
	}
	if cfg.Source != SourceFlags || cfg.Directory != "/data" || cfg.Keyword != "apple" {
		t.Errorf("unexpected flag values: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.DispersionWords, []string{"it", "was"}) {
		t.Errorf("DispersionWords = %v", cfg.DispersionWords)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad policy", []string{"--extensions", "glob"}, nil},
		{"bad level", []string{"--level", "symbol"}, nil},
		{"bad source", []string{"--source", "stdin"}, nil},
		{"bad size", nil, map[string]string{"OCRSCAN_MAX_IMAGE_SIZE": "huge"}},
		{"dir and image", []string{"--dir", "a", "--image", "b"}, nil},
		{"analyze dir", []string{"--dir", "a", "--analyze"}, nil},
		{"small window", []string{"--window", "1"}, nil},
		{"unknown flag", []string{"--nope"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.args); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}
