package storage

import (
	"os"
	"path/filepath"
	"solobill/internal/providers"
)

// FileAdapter keeps one file per key inside a directory. Writes go through a
// temp file with fsync and rename so a value is either fully replaced or not
// observed.
type FileAdapter struct {
	dir        string
	mode       os.FileMode
	compressor CompressorInterface
	logger     providers.Logger
}

func NewFileAdapter(dir string, mode uint32, compressor CompressorInterface, logger providers.Logger) *FileAdapter {
	return &FileAdapter{
		dir:        dir,
		mode:       os.FileMode(mode),
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileAdapter) path(key string) string {
	return filepath.Join(f.dir, key)
}

func (f *FileAdapter) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, false, err
	}
	return decompressed, true, nil
}

func (f *FileAdapter) Set(key string, value []byte) error {
	data, err := f.compressor.Compress(value)
	if err != nil {
		return err
	}

	fileName := f.path(key)
	tmpFile := fileName + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.mode)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileAdapter) Close() error {
	f.compressor.Close()
	return nil
}
