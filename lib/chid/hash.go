// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chid

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// domainKey is a 32-byte BLAKE3 key separating the Chid and Title hash
// domains, so an identifier and a title with the same text hash
// differently. The bytes are the ASCII domain name, zero-padded.
// Changing a key changes every hash in its domain.
type domainKey [32]byte

var (
	chidDomainKey = domainKey{
		'b', 'u', 'r', 'e', 'a', 'u', '.', 'c', 'h', 'i', 'd', 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	titleDomainKey = domainKey{
		'b', 'u', 'r', 'e', 'a', 'u', '.', 't', 'i', 't', 'l', 'e', 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// keyedHash returns the first eight bytes (little-endian) of the
// BLAKE3 keyed hash of data. The result depends only on key and data,
// unlike hash/maphash which is seeded per process.
func keyedHash(key domainKey, data []byte) uint64 {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("chid: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	digest := hasher.Sum(nil)
	return binary.LittleEndian.Uint64(digest[:8])
}
