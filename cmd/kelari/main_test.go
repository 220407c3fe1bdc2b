package main

import (
	"io/fs"
	"testing"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"laod", "load"},
		{"loda", "load"},
		{"resolv", "resolve"},
		{"reslove", "resolve"},
		{"valiate", "validate"},
		{"validat", "validate"},
		{"vlidate", "validate"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"revalidation", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"load", "load", 0},
		{"", "mcp", 3},
		{"laod", "load", 2},
		{"validat", "validate", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			got := editDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSourceFlagsLocation(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		value    string
		wantKind string
		wantErr  bool
	}{
		{name: "auto-detect URL", kind: "", value: "https://example.com/a.yaml", wantKind: "url"},
		{name: "auto-detect file", kind: "", value: "specs/a.yaml", wantKind: "file"},
		{name: "explicit bundled", kind: "bundled", value: "petstore.yaml", wantKind: "bundled"},
		{name: "explicit url", kind: "url", value: "example.com/a.yaml", wantKind: "url"},
		{name: "unknown kind", kind: "ftp", value: "a.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := &sourceFlags{kind: tt.kind}
			loc, err := flags.location(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("location(%q) expected error, got %v", tt.value, loc)
				}
				return
			}
			if err != nil {
				t.Fatalf("location(%q) unexpected error: %v", tt.value, err)
			}
			if string(loc.Kind) != tt.wantKind {
				t.Errorf("location(%q).Kind = %q, want %q", tt.value, loc.Kind, tt.wantKind)
			}
		})
	}
}

func TestBundledDocs(t *testing.T) {
	docs := bundledDocs()
	if docs == nil {
		t.Fatal("bundledDocs() returned nil")
	}
	data, err := fs.ReadFile(docs, "petstore.yaml")
	if err != nil {
		t.Fatalf("reading bundled petstore.yaml: %v", err)
	}
	if len(data) == 0 {
		t.Error("bundled petstore.yaml is empty")
	}
}
