package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		wantField string
	}{
		{name: "defaults", cfg: NewDefaultConfig()},
		{name: "empty framework", cfg: Config{Type: "console", Sources: []string{"*.cs"}}, wantErr: true, wantField: "framework"},
		{name: "empty type", cfg: Config{Framework: "f", Sources: []string{"*.cs"}}, wantErr: true, wantField: "type"},
		{name: "no sources", cfg: Config{Type: "console", Framework: "f"}, wantErr: true, wantField: "sources"},
		{name: "blank source", cfg: Config{Type: "console", Framework: "f", Sources: []string{"*.cs", ""}}, wantErr: true, wantField: "sources[1]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.cfg)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error type = %T, want *ValidationErrors", err)
			}
			if verrs.Errors[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verrs.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	t.Parallel()

	err := Validate(Config{})
	if err == nil {
		t.Fatal("Validate(Config{}) returned nil")
	}
	if !strings.Contains(err.Error(), "3 error(s)") {
		t.Errorf("Error() = %q, want it to count 3 errors", err.Error())
	}
}
