// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the one CBOR configuration shared by the chid
// types, identifier catalogs, and the bureau-chid tool.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. A
// catalog with the same entries in the same order always encodes to
// the same bytes, so encoded catalogs can be compared and hashed
// directly.
//
//	data, err := codec.Marshal(catalog)
//	err = codec.Unmarshal(data, &catalog)
//
// Struct types that travel as both JSON and CBOR carry only `json`
// tags; fxamacker/cbor reads them when `cbor` tags are absent.
package codec
