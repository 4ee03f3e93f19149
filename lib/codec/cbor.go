// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the deterministic CBOR encoder.
var encMode cbor.EncMode

// decMode accepts standard CBOR. Unknown struct fields are ignored;
// duplicate map keys are rejected.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Types that only implement encoding.TextMarshaler encode as CBOR
	// text strings instead of empty maps of their unexported fields.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// any-typed targets decode maps as map[string]any so decoded
		// documents can be re-encoded as JSON or YAML.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		// Mirror of the TextMarshaler encode option.
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
		// A catalog entry with two "id" keys is malformed, not
		// last-wins.
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder.
type Encoder = cbor.Encoder

// Decoder is a CBOR stream decoder.
type Decoder = cbor.Decoder

// RawMessage is a raw encoded CBOR value.
type RawMessage = cbor.RawMessage

// NewEncoder returns a deterministic CBOR encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a CBOR decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// DiagnoseFirst returns the diagnostic notation for the first data
// item in data along with the unconsumed remainder.
func DiagnoseFirst(data []byte) (string, []byte, error) {
	return cbor.DiagnoseFirst(data)
}

// MajorType is the major type of a CBOR data item (RFC 8949 §3.1).
type MajorType uint8

const (
	MajorUnsigned MajorType = iota
	MajorNegative
	MajorByteString
	MajorTextString
	MajorArray
	MajorMap
	MajorTag
	MajorSimple
)

func (m MajorType) String() string {
	switch m {
	case MajorUnsigned:
		return "unsigned integer"
	case MajorNegative:
		return "negative integer"
	case MajorByteString:
		return "byte string"
	case MajorTextString:
		return "text string"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tagged value"
	case MajorSimple:
		return "simple value or float"
	}
	return "invalid major type"
}

// Major returns the major type of the first data item in data, read
// from the top three bits of its initial byte. It reports false for
// empty data. The rest of the item is not checked.
func Major(data []byte) (MajorType, bool) {
	if len(data) == 0 {
		return 0, false
	}
	return MajorType(data[0] >> 5), true
}
