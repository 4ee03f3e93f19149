// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package chid provides two small fixed-capacity string value types:
// [Chid], a short identifier, and [Title], the human-readable label
// that accompanies it.
//
// A Chid is at most [MaxChidLength] bytes and never contains '.' or a
// space, so it can be embedded in dotted names, path segments, and
// space-delimited formats without escaping. A Title is at most
// [MaxTitleLength] bytes with no character restriction. Both hold valid
// UTF-8 text only.
//
// Both types store their contents inline in a fixed-size array. They
// are plain values: copy them, compare them with ==, use them as map
// keys, and order them with Compare. Construction only happens through
// parsing, which validates and never normalizes: the stored text is
// exactly the input text.
//
//	id, err := chid.ParseChid("render-farm")
//	title, err := chid.ParseTitle("Render farm (GPU pool)")
//
// # Serialization
//
// Both types implement encoding.TextMarshaler and
// encoding.TextUnmarshaler, so any text-based framework can carry them
// as a plain string. Builds without the nocodec tag additionally get
// leaf scalar hooks for encoding/json, gopkg.in/yaml.v3, and CBOR
// (through lib/codec). The hooks reject any non-string scalar with
// [ErrExpectedString] rather than coercing numbers or booleans to
// text.
package chid
