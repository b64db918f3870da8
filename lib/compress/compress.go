// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Levels follow the reference zstd numbering: 1 is the fastest,
// lowest-ratio setting. Values above MaxLevel are rejected rather
// than clamped so a misconfigured suite fails loudly.
const (
	MinLevel = 1
	MaxLevel = 22
)

// Sentinel errors. ErrorName maps each to a stable short name for
// fixture output.
var (
	// ErrShortBuffer is returned when the compressed output does not
	// fit the caller's destination buffer.
	ErrShortBuffer = errors.New("compress: destination buffer too small")

	// ErrInvalidLevel is returned for levels outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("compress: invalid compression level")

	// ErrEmptyInput is returned when the source buffer is empty. The
	// fixtures always compress a fixed-size buffer; an empty source
	// means the harness is miswired, not that the codec failed.
	ErrEmptyInput = errors.New("compress: empty input")

	// ErrIncompressible is returned by the LZ4 block path when the
	// compressor cannot shrink the input. The caller decides whether
	// to store raw; this package never does it silently because the
	// stored form would no longer round-trip through LZ4Decompress.
	ErrIncompressible = errors.New("compress: data is incompressible")
)

// ErrorName returns the stable short name of a sentinel error, in the
// spirit of the reference codec's error-name lookup. Unknown errors
// map to "generic".
func ErrorName(err error) string {
	switch {
	case err == nil:
		return "no_error"
	case errors.Is(err, ErrShortBuffer):
		return "dstSize_tooSmall"
	case errors.Is(err, ErrInvalidLevel):
		return "parameter_outOfBound"
	case errors.Is(err, ErrEmptyInput):
		return "srcSize_wrong"
	case errors.Is(err, ErrIncompressible):
		return "cannotCompress"
	default:
		return "generic"
	}
}

// encoders caches one zstd encoder per distinct speed level. Encoders
// are safe for concurrent use; concurrency is pinned to 1 so output
// is not dependent on goroutine scheduling.
var (
	encodersMu sync.Mutex
	encoders   = map[zstd.EncoderLevel]*zstd.Encoder{}

	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

func encoderFor(level int) (*zstd.Encoder, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	speed := zstd.EncoderLevelFromZstd(level)

	encodersMu.Lock()
	defer encodersMu.Unlock()

	if encoder, ok := encoders[speed]; ok {
		return encoder, nil
	}

	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(speed),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd encoder for level %d: %w", level, err)
	}
	encoders[speed] = encoder
	return encoder, nil
}

// CompressInto compresses src at the given zstd level into dst and
// returns the number of bytes written. dst is written in place up to
// the returned size; its remaining bytes are untouched. Returns
// ErrShortBuffer when the frame does not fit in dst.
func CompressInto(dst, src []byte, level int) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}

	encoder, err := encoderFor(level)
	if err != nil {
		return 0, err
	}

	compressed := encoder.EncodeAll(src, nil)
	if len(compressed) > len(dst) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, len(compressed), len(dst))
	}

	return copy(dst, compressed), nil
}

// Decompress expands a zstd frame produced by CompressInto. The
// maxSize cap bounds allocation so a corrupt frame cannot ask for
// arbitrary memory.
func Decompress(src []byte, maxSize int) ([]byte, error) {
	result, err := zstdDecoder.DecodeAll(src, make([]byte, 0, maxSize))
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decompress: %w", err)
	}
	if len(result) > maxSize {
		return nil, fmt.Errorf("compress: zstd decompress: %d bytes exceeds cap %d", len(result), maxSize)
	}
	return result, nil
}

// LZ4CompressInto compresses src into dst using LZ4 block mode and
// returns the number of bytes written. Unlike the zstd path there are
// no levels: block mode has a single fast setting. Incompressible
// input that would not fit dst returns ErrShortBuffer.
func LZ4CompressInto(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}

	// Compress into a CompressBlockBound-sized scratch buffer so the
	// block compressor never fails for lack of space, then enforce
	// the caller's capacity, keeping the in-place contract.
	scratch := make([]byte, lz4.CompressBlockBound(len(src)))

	var c lz4.Compressor
	written, err := c.CompressBlock(src, scratch)
	if err != nil {
		return 0, fmt.Errorf("compress: lz4 compress: %w", err)
	}

	// CompressBlock returns 0 when it determines the data is
	// incompressible.
	if written == 0 {
		return 0, ErrIncompressible
	}

	if written > len(dst) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, written, len(dst))
	}
	return copy(dst, scratch[:written]), nil
}

// LZ4Decompress expands an LZ4 block produced by LZ4CompressInto.
// uncompressedSize must match the original length exactly.
func LZ4Decompress(src []byte, uncompressedSize int) ([]byte, error) {
	dst := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("compress: lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("compress: lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return dst, nil
}
