// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/chid/lib/chid"
	"github.com/bureau-foundation/chid/lib/codec"
)

// Entry pairs an identifier with its display title.
type Entry struct {
	ID    chid.Chid  `json:"id" yaml:"id"`
	Title chid.Title `json:"title" yaml:"title"`
}

// UnmarshalYAML decodes an entry mapping. yaml.v3 does not consult a
// field's unmarshaler when the value is null, so null id and title
// values are rejected here with chid.ErrExpectedString, matching the
// JSON and CBOR formats.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind == yaml.AliasNode && value.Alias != nil {
				value = value.Alias
			}
			if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!null" {
				continue
			}
			switch key.Value {
			case "id":
				return fmt.Errorf("CHID: %w, got YAML null (line %d)", chid.ErrExpectedString, value.Line)
			case "title":
				return fmt.Errorf("title: %w, got YAML null (line %d)", chid.ErrExpectedString, value.Line)
			}
		}
	}
	type plain Entry
	return node.Decode((*plain)(e))
}

// Catalog is an ordered list of entries. Order is preserved through
// encoding; use Sorted for a canonical order.
type Catalog struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// DuplicateError reports two entries sharing an identifier. First and
// Second are entry indices, First < Second.
type DuplicateError struct {
	ID     chid.Chid
	First  int
	Second int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate identifier %q at entries %d and %d", e.ID, e.First, e.Second)
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format Format) (*Catalog, error) {
	var c Catalog
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &c)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &c)
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	case FormatCBOR:
		err = codec.Unmarshal(data, &c)
	default:
		return nil, fmt.Errorf("decode catalog: unsupported format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Encode serializes c in the given format. JSON output is indented
// with two spaces and ends with a newline.
func Encode(c *Catalog, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, FormatJSONC:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s catalog: %w", format, err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encode yaml catalog: %w", err)
		}
		return data, nil
	case FormatCBOR:
		data, err := codec.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encode cbor catalog: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("encode catalog: unsupported format %v", format)
}

// Validate returns a *DuplicateError for the first identifier that
// appears twice, or nil.
func (c *Catalog) Validate() error {
	seen := make(map[chid.Chid]int, len(c.Entries))
	for index, entry := range c.Entries {
		if first, exists := seen[entry.ID]; exists {
			return &DuplicateError{ID: entry.ID, First: first, Second: index}
		}
		seen[entry.ID] = index
	}
	return nil
}

// Lookup returns the entry with the given identifier.
func (c *Catalog) Lookup(id chid.Chid) (Entry, bool) {
	for _, entry := range c.Entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}

// Sorted returns the entries ordered by identifier, then title. The
// catalog itself is not modified.
func (c *Catalog) Sorted() []Entry {
	sorted := slices.Clone(c.Entries)
	slices.SortStableFunc(sorted, compareEntries)
	return sorted
}

func compareEntries(a, b Entry) int {
	if order := a.ID.Compare(b.ID); order != 0 {
		return order
	}
	return a.Title.Compare(b.Title)
}

// Digest returns a fingerprint of the catalog's entries that does not
// depend on their order. Catalogs with the same set of entries have
// the same digest in every process.
func (c *Catalog) Digest() uint64 {
	var digest uint64
	for _, entry := range c.Entries {
		title := entry.Title.Hash()
		digest += entry.ID.Hash() ^ (title<<1 | title>>63)
	}
	return digest
}
