// Package storage provides the key-value adapters record collections are
// persisted through. A value write is atomic at single-key granularity;
// there is no cross-key transaction.
package storage

import (
	"fmt"
	"path/filepath"
	"solobill/internal/providers"
	"solobill/internal/structures"
)

type AdapterInterface interface {
	// Get returns the stored value for key, reporting absence without error.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

func NewAdapter(conf *structures.Config, logger providers.Logger, compressor CompressorInterface) (AdapterInterface, error) {
	switch conf.Storage.Backend {
	case "sqlite":
		return NewSqliteAdapter(filepath.Join(conf.Storage.Dir, "solobill.db"), logger)
	case "file":
		return NewFileAdapter(conf.Storage.Dir, conf.Storage.Mode, compressor, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}
}
