package storage

import (
	"fmt"
	"solobill/internal/structures"

	"github.com/klauspost/compress/zstd"
)

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	return z.decoder.DecodeAll(val, nil)
}

func (z *ZstdCompression) Close() {
	z.encoder.Close()
}

func NewZstdCompressor() (CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// NoopCompression passes values through unchanged.
type NoopCompression struct{}

func (n *NoopCompression) Compress(val []byte) ([]byte, error)   { return val, nil }
func (n *NoopCompression) Decompress(val []byte) ([]byte, error) { return val, nil }
func (n *NoopCompression) Close()                                {}

func NewCompressor(conf *structures.Config) (CompressorInterface, error) {
	if conf.Storage.Compress {
		return NewZstdCompressor()
	}
	return &NoopCompression{}, nil
}
