package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestAppConfig_Structure(t *testing.T) {
	config := AppConfig{
		Verbose: true,
		Data: DataConfig{
			File:   "/home/user/.todo/todos.json",
			Format: "json",
		},
		Display: DisplayConfig{
			Color:    "never",
			Timezone: "Europe/Berlin",
		},
	}

	if config.Data.File != "/home/user/.todo/todos.json" {
		t.Errorf("Data.File mismatch: got %q", config.Data.File)
	}
	if config.Data.Format != "json" {
		t.Errorf("Data.Format mismatch: got %q, want %q", config.Data.Format, "json")
	}
	if config.Display.Color != "never" {
		t.Errorf("Display.Color mismatch: got %q, want %q", config.Display.Color, "never")
	}
}

func TestAppConfig_ZeroValue(t *testing.T) {
	var config AppConfig
	if config.Verbose || config.Data.File != "" || config.Display.Timezone != "" {
		t.Errorf("zero AppConfig should be empty, got %+v", config)
	}
}

func TestAppConfig_Validation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		config  AppConfig
		wantErr bool
	}{
		{name: "defaults", config: AppConfig{Display: DisplayConfig{Color: "auto"}}},
		{name: "yml alias", config: AppConfig{Data: DataConfig{Format: "yml"}, Display: DisplayConfig{Color: "always"}}},
		{name: "missing color", config: AppConfig{}, wantErr: true},
		{name: "unknown color", config: AppConfig{Display: DisplayConfig{Color: "sometimes"}}, wantErr: true},
		{name: "unknown format", config: AppConfig{Data: DataConfig{Format: "xml"}, Display: DisplayConfig{Color: "never"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
