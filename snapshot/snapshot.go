// Package snapshot persists bloomset filters to files, optionally zstd
// compressed. The on-disk payload is either the raw bloomset wire format
// or a single zstd frame containing it; Load distinguishes the two by the
// zstd frame magic, so callers never need to record which mode was used.
package snapshot

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	bloomset "github.com/forestrie/go-bloomset"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

var (
	encoderPool = sync.Pool{
		New: func() any {
			enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
			return enc
		},
	}

	decoderPool = sync.Pool{
		New: func() any {
			dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
			return dec
		},
	}
)

// Save writes the serialized filter to path, replacing any existing file.
func Save(path string, f *bloomset.Filter, compress bool) error {
	data := f.ToBytes()
	if compress {
		enc := encoderPool.Get().(*zstd.Encoder)
		defer encoderPool.Put(enc)
		data = enc.EncodeAll(data, nil)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: writing %s: %w", path, err)
	}
	return nil
}

// Load reads a filter previously written by [Save]. Corruption in the
// filter payload surfaces as [bloomset.ErrCorruptData].
func Load(path string) (*bloomset.Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: reading %s: %w", path, err)
	}
	if bytes.HasPrefix(data, zstdMagic) {
		dec := decoderPool.Get().(*zstd.Decoder)
		defer decoderPool.Put(dec)
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd frame: %v", bloomset.ErrCorruptData, err)
		}
	}
	return bloomset.FromBytes(data)
}
