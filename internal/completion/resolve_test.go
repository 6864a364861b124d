package completion

import (
	"errors"
	"testing"
)

func TestResolveTemperature(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr error
	}{
		{input: "", want: 0.7},
		{input: "0", want: 0.0},
		{input: "1", want: 1.0},
		{input: "0.25", want: 0.25},
		{input: "-0.1", wantErr: ErrTemperatureOutOfRange},
		{input: "1.1", wantErr: ErrTemperatureOutOfRange},
		{input: "NaN", wantErr: ErrTemperatureOutOfRange},
		{input: "nan", wantErr: ErrTemperatureOutOfRange},
		{input: "+Inf", wantErr: ErrTemperatureOutOfRange},
		{input: "abc", wantErr: ErrInvalidTemperature},
		{input: "0.5 ", wantErr: ErrInvalidTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveTemperature(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveTemperature(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveTemperature(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ResolveTemperature(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveRole(t *testing.T) {
	for _, in := range []string{"", "You are a helpful assistant."} {
		if got := ResolveRole(in); got != in {
			t.Errorf("ResolveRole(%q) = %q", in, got)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	host := &fakeHost{config: map[string]string{KeyAPIKey: "sk-test"}}

	cfg, err := LoadConfig(host)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.Model)
	}
	if cfg.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %v, want %v", cfg.Temperature, DefaultTemperature)
	}
	if cfg.Role != "" {
		t.Errorf("Role = %q, want empty", cfg.Role)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want sk-test", cfg.APIKey)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOK bool
	}{
		{"off", LevelOff, true},
		{"ERROR", LevelError, true},
		{" warn ", LevelWarn, true},
		{"info", LevelInfo, true},
		{"debug", LevelDebug, true},
		{"trace", LevelOff, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
