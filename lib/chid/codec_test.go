// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !nocodec

package chid_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/chid/lib/chid"
	"github.com/bureau-foundation/chid/lib/codec"
)

type labeled struct {
	ID    chid.Chid  `json:"id" yaml:"id"`
	Title chid.Title `json:"title" yaml:"title"`
}

func TestJSONRoundtrip(t *testing.T) {
	original := labeled{
		ID:    chid.MustParseChid("render-farm"),
		Title: chid.MustParseTitle("Render farm. \"GPU\" pool"),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"id":"render-farm","title":"Render farm. \"GPU\" pool"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded labeled
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip: got %+v, want %+v", decoded, original)
	}
}

func TestJSONRejectsNonString(t *testing.T) {
	for _, input := range []string{`42`, `-1.5`, `true`, `null`, `[]`, `{}`, `["a"]`} {
		var id chid.Chid
		if err := id.UnmarshalJSON([]byte(input)); !errors.Is(err, chid.ErrExpectedString) {
			t.Errorf("Chid.UnmarshalJSON(%s) error = %v, want ErrExpectedString", input, err)
		}
		var title chid.Title
		if err := title.UnmarshalJSON([]byte(input)); !errors.Is(err, chid.ErrExpectedString) {
			t.Errorf("Title.UnmarshalJSON(%s) error = %v, want ErrExpectedString", input, err)
		}
	}

	kinds := map[string]string{
		`42`:   "got JSON number",
		`-1.5`: "got JSON number",
		`null`: "got JSON null",
		`x`:    "got JSON invalid JSON",
		``:     "got JSON empty input",
	}
	for input, want := range kinds {
		var id chid.Chid
		if err := id.UnmarshalJSON([]byte(input)); err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("Chid.UnmarshalJSON(%q) error = %v, want it to contain %q", input, err, want)
		}
	}

	var document labeled
	err := json.Unmarshal([]byte(`{"id":7,"title":"x"}`), &document)
	if err == nil || !strings.Contains(err.Error(), "expected a string") {
		t.Errorf("document with numeric id: error = %v", err)
	}
}

func TestJSONSurfacesParseErrors(t *testing.T) {
	var id chid.Chid
	err := id.UnmarshalJSON([]byte(`"hel.lo"`))
	var parseErr *chid.ParseChidError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseChidError", err)
	}
	if err.Error() != "Invalid character . at position 3" {
		t.Errorf("message = %q", err.Error())
	}

	var title chid.Title
	err = title.UnmarshalJSON([]byte(`"` + strings.Repeat("a", 257) + `"`))
	if !errors.Is(err, chid.ErrTitleTooLong) {
		t.Errorf("oversized title error = %v", err)
	}

	var document labeled
	err = json.Unmarshal([]byte(`{"id":"`+strings.Repeat("a", 57)+`","title":"x"}`), &document)
	if err == nil || !strings.Contains(err.Error(), "CHID too long") {
		t.Errorf("document with long id: error = %v", err)
	}
}

func TestJSONEscapedString(t *testing.T) {
	var id chid.Chid
	if err := id.UnmarshalJSON([]byte(`"café"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if id.String() != "café" {
		t.Errorf("decoded %q, want %q", id, "café")
	}

	// The escape hides the dot from a byte scan of the raw token.
	if err := id.UnmarshalJSON([]byte(`"a\u002eb"`)); !errors.Is(err, chid.ErrInvalidChar) {
		t.Errorf("escaped dot error = %v, want ErrInvalidChar", err)
	}
}

func TestYAMLRoundtrip(t *testing.T) {
	original := labeled{
		ID:    chid.MustParseChid("123"),
		Title: chid.MustParseTitle("true"),
	}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded labeled
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal of %q: %v", data, err)
	}
	if decoded != original {
		t.Errorf("roundtrip: got %+v, want %+v", decoded, original)
	}
}

func TestYAMLPlainAndQuotedStrings(t *testing.T) {
	for _, input := range []string{
		"id: render-farm\ntitle: Render farm\n",
		"id: \"render-farm\"\ntitle: 'Render farm'\n",
	} {
		var decoded labeled
		if err := yaml.Unmarshal([]byte(input), &decoded); err != nil {
			t.Fatalf("Unmarshal(%q): %v", input, err)
		}
		if decoded.ID.String() != "render-farm" || decoded.Title.String() != "Render farm" {
			t.Errorf("decoded %+v from %q", decoded, input)
		}
	}
}

func TestYAMLRejectsNonString(t *testing.T) {
	for _, input := range []string{
		"id: 42\n",
		"id: 1.5\n",
		"id: true\n",
		"id: [a, b]\n",
		"id: {a: b}\n",
	} {
		var decoded labeled
		err := yaml.Unmarshal([]byte(input), &decoded)
		if !errors.Is(err, chid.ErrExpectedString) {
			t.Errorf("Unmarshal(%q) error = %v, want ErrExpectedString", input, err)
		}
	}
}

func TestYAMLNullNode(t *testing.T) {
	// yaml.v3 does not call hooks for null values in documents (the
	// field stays zero), but a direct call still rejects them.
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	var id chid.Chid
	if err := id.UnmarshalYAML(node); !errors.Is(err, chid.ErrExpectedString) {
		t.Errorf("UnmarshalYAML(null) error = %v, want ErrExpectedString", err)
	}
}

func TestYAMLSurfacesParseErrors(t *testing.T) {
	var decoded labeled
	err := yaml.Unmarshal([]byte("id: \"hel lo\"\n"), &decoded)
	if err == nil || !strings.Contains(err.Error(), "Invalid character   at position 3") {
		t.Errorf("error = %v", err)
	}
}

func TestCBORRoundtrip(t *testing.T) {
	original := labeled{
		ID:    chid.MustParseChid("render-farm"),
		Title: chid.MustParseTitle("Render farm"),
	}

	data, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded labeled
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip: got %+v, want %+v", decoded, original)
	}

	notation, err := codec.Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, `"render-farm"`) {
		t.Errorf("identifier is not a text string in %s", notation)
	}
}

func TestCBORRejectsNonString(t *testing.T) {
	for _, value := range []any{42, -3, 1.5, true, nil, []byte("bytes"), []string{"a"}, map[string]string{"a": "b"}} {
		data, err := codec.Marshal(value)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", value, err)
		}
		var id chid.Chid
		if err := id.UnmarshalCBOR(data); !errors.Is(err, chid.ErrExpectedString) {
			t.Errorf("Chid.UnmarshalCBOR(%v) error = %v, want ErrExpectedString", value, err)
		}
		var title chid.Title
		if err := title.UnmarshalCBOR(data); !errors.Is(err, chid.ErrExpectedString) {
			t.Errorf("Title.UnmarshalCBOR(%v) error = %v, want ErrExpectedString", value, err)
		}
	}

	var id chid.Chid
	if err := id.UnmarshalCBOR(nil); !errors.Is(err, chid.ErrExpectedString) {
		t.Errorf("UnmarshalCBOR(nil) error = %v", err)
	}
}

func TestCBORSurfacesParseErrors(t *testing.T) {
	data, err := codec.Marshal("hel.lo")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var id chid.Chid
	err = id.UnmarshalCBOR(data)
	var parseErr *chid.ParseChidError
	if !errors.As(err, &parseErr) || parseErr.Position != 3 {
		t.Errorf("error = %v, want invalid character at position 3", err)
	}
}

func TestAcceptedValuesRoundtripEveryFormat(t *testing.T) {
	for _, text := range []string{"", "render-farm", "héllo", "日本語", "a\uFFFDb", strings.Repeat("z", chid.MaxChidLength)} {
		original := labeled{ID: chid.MustParseChid(text), Title: chid.MustParseTitle(text + " title")}

		jsonData, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("json.Marshal(%q): %v", text, err)
		}
		var fromJSON labeled
		if err := json.Unmarshal(jsonData, &fromJSON); err != nil || fromJSON != original {
			t.Errorf("JSON %q: got %+v, %v", text, fromJSON, err)
		}

		yamlData, err := yaml.Marshal(original)
		if err != nil {
			t.Fatalf("yaml.Marshal(%q): %v", text, err)
		}
		var fromYAML labeled
		if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil || fromYAML != original {
			t.Errorf("YAML %q: got %+v, %v", text, fromYAML, err)
		}

		cborData, err := codec.Marshal(original)
		if err != nil {
			t.Fatalf("codec.Marshal(%q): %v", text, err)
		}
		var fromCBOR labeled
		if err := codec.Unmarshal(cborData, &fromCBOR); err != nil || fromCBOR != original {
			t.Errorf("CBOR %q: got %+v, %v", text, fromCBOR, err)
		}
	}
}
