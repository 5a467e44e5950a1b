package model

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParsePackageSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desc    string
		want    PackageSpec
		wantErr bool
	}{
		{name: "nuget package", desc: "nuget;newtonsoft.json;12.0.3", want: PackageSpec{"nuget", "newtonsoft.json", "12.0.3"}},
		{name: "keeps whitespace and case", desc: " NuGet ;Serilog; 2.10.0", want: PackageSpec{" NuGet ", "Serilog", " 2.10.0"}},
		{name: "two fields", desc: "nuget;serilog", wantErr: true},
		{name: "four fields", desc: "nuget;serilog;2.10.0;extra", wantErr: true},
		{name: "empty string", desc: "", wantErr: true},
		{name: "empty middle field", desc: "nuget;;1.0.0", wantErr: true},
		{name: "trailing separator only", desc: "nuget;serilog;", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePackageSpec(tt.desc)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedSpec) {
					t.Fatalf("ParsePackageSpec(%q) error = %v, want ErrMalformedSpec", tt.desc, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePackageSpec(%q) unexpected error: %v", tt.desc, err)
			}
			if got != tt.want {
				t.Errorf("ParsePackageSpec(%q) = %+v, want %+v", tt.desc, got, tt.want)
			}
		})
	}
}

func TestPackageSpecString(t *testing.T) {
	t.Parallel()

	p := PackageSpec{Repository: "nuget", Name: "xunit", Version: "2.4.1"}
	if got := p.String(); got != "nuget;xunit;2.4.1" {
		t.Errorf("String() = %q, want %q", got, "nuget;xunit;2.4.1")
	}
}

func TestPackageSpecUnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    PackageSpec
		wantErr bool
	}{
		{name: "descriptor", input: `"nuget;xunit;2.4.1"`, want: PackageSpec{"nuget", "xunit", "2.4.1"}},
		{name: "mapping", input: `{"repository": "nuget", "name": "xunit", "version": "2.4.1"}`, want: PackageSpec{"nuget", "xunit", "2.4.1"}},
		{name: "mapping missing version", input: `{"repository": "nuget", "name": "xunit"}`, wantErr: true},
		{name: "malformed descriptor", input: `"nuget;xunit"`, wantErr: true},
		{name: "sequence", input: `["nuget", "xunit", "2.4.1"]`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got PackageSpec
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedSpec) {
					t.Fatalf("Unmarshal(%s) error = %v, want ErrMalformedSpec", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackageSpecMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]PackageSpec{{"nuget", "xunit", "2.4.1"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `["nuget;xunit;2.4.1"]` {
		t.Errorf("Marshal = %s, want %s", data, `["nuget;xunit;2.4.1"]`)
	}
}
