// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog_test

import (
	"testing"

	"github.com/bureau-foundation/chid/lib/catalog"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    catalog.Format
		wantErr bool
	}{
		{name: "json", want: catalog.FormatJSON},
		{name: "JSONC", want: catalog.FormatJSONC},
		{name: "yaml", want: catalog.FormatYAML},
		{name: "yml", want: catalog.FormatYAML},
		{name: "cbor", want: catalog.FormatCBOR},
		{name: "toml", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ParseFormat(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    catalog.Format
		wantErr bool
	}{
		{path: "labels.json", want: catalog.FormatJSON},
		{path: "config/labels.jsonc", want: catalog.FormatJSONC},
		{path: "labels.yml", want: catalog.FormatYAML},
		{path: "/tmp/labels.cbor", want: catalog.FormatCBOR},
		{path: "labels", wantErr: true},
		{path: "labels.txt", wantErr: true},
	}
	for _, tt := range tests {
		got, err := catalog.FormatFromPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FormatFromPath(%q) = %v, want error", tt.path, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatFromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if got := catalog.FormatCBOR.String(); got != "cbor" {
		t.Errorf("FormatCBOR.String() = %q", got)
	}
	if got := catalog.Format(42).String(); got != "Format(42)" {
		t.Errorf("Format(42).String() = %q", got)
	}
}
