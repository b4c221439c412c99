package market

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileProvider reads a local JSON file of symbol -> price, e.g.
//
//	{"BTC-AUD": 65000.0, "ETH-AUD": 3500.0}
//
// A missing file yields an empty snapshot: nothing to act on yet.
type FileProvider struct {
	Path string
}

// NewFileProvider builds a provider reading the given path each fetch.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Fetch implements Provider.
func (p *FileProvider) Fetch(_ context.Context) (Snapshot, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", p.Path, err)
	}

	snap, err := parseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.Path, err)
	}
	return snap, nil
}
