package config

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Mavwarf/tictracker-icon/internal/fonts"
	"github.com/Mavwarf/tictracker-icon/internal/icon"
)

func TestUnmarshalKeepsDefaults(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{"text": "42"}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Text != "42" {
		t.Errorf("Text = %q, want %q", cfg.Text, "42")
	}
	if cfg.GradientTop != DefaultGradientTop {
		t.Errorf("GradientTop = %q, want %q", cfg.GradientTop, DefaultGradientTop)
	}
	if cfg.GradientBottom != DefaultGradientBottom {
		t.Errorf("GradientBottom = %q, want %q", cfg.GradientBottom, DefaultGradientBottom)
	}
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon.json")
	data := `{"gradient_top": "#000000", "fonts": ["/tmp/a.ttf"]}`
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GradientTop != "#000000" {
		t.Errorf("GradientTop = %q", cfg.GradientTop)
	}
	if cfg.Text != DefaultText {
		t.Errorf("Text = %q, want default %q", cfg.Text, DefaultText)
	}
	if got := cfg.FontCandidates(); len(got) != 1 || got[0] != "/tmp/a.ttf" {
		t.Errorf("FontCandidates() = %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(p, []byte("{not json"), 0644)
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestDefaultStyleMatchesIcon(t *testing.T) {
	st, err := Default().Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if !reflect.DeepEqual(st, icon.DefaultStyle()) {
		t.Errorf("Default().Style() = %+v, want icon.DefaultStyle()", st)
	}
}

func TestStyleRejectsEmptyText(t *testing.T) {
	cfg := Default()
	cfg.Text = ""
	if _, err := cfg.Style(); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestFontCandidatesDefault(t *testing.T) {
	if got := Default().FontCandidates(); !reflect.DeepEqual(got, fonts.Candidates) {
		t.Errorf("FontCandidates() = %v, want built-in list", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#2ECCC1", color.RGBA{46, 204, 193, 255}, false},
		{"3b82f6", color.RGBA{59, 130, 246, 255}, false},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
