// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation keeps output digests and report digests from colliding
// even over identical bytes. The byte values are the ASCII encoding
// of the domain name, zero-padded to 32 bytes, so the keys are
// inspectable in hex dumps.
type domainKey [32]byte

var (
	outputDomainKey = domainKey{
		'l', 'i', 'n', 'k', 'p', 'r', 'o', 'b', 'e', '.',
		'o', 'u', 't', 'p', 'u', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	reportDomainKey = domainKey{
		'l', 'i', 'n', 'k', 'p', 'r', 'o', 'b', 'e', '.',
		'r', 'e', 'p', 'o', 'r', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

func keyedDigest(key domainKey, data []byte) string {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		// NewKeyed fails only for a key that is not 32 bytes, which
		// the domainKey type rules out.
		panic("probe: blake3 keyed hasher: " + err.Error())
	}
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// OutputDigest computes the output-domain digest of probe-observed
// bytes (compressed buffers). Recorded in Result.Digest.
func OutputDigest(data []byte) string {
	return keyedDigest(outputDomainKey, data)
}

// ReportDigest computes the report-domain digest of an encoded
// report. Stored alongside report files for integrity checks.
func ReportDigest(data []byte) string {
	return keyedDigest(reportDomainKey, data)
}
