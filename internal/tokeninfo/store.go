package tokeninfo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"token-extensions-cli/internal/log"
)

// Store persists token-info records as one pretty-printed JSON file per
// creation event in a flat directory.
type Store struct {
	dir    string
	logger zerolog.Logger
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first record.
func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		logger: log.WithComponent("tokeninfo"),
	}
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// Record writes info to a new file and returns the file path. The record is
// never mutated afterwards; the write is a temp file + rename so a crash
// never leaves a half-written .json behind.
func (s *Store) Record(info *TokenInfo) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal token info: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.dir, info.Filename())
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write token info: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("replace token info: %w", err)
	}

	s.logger.Debug().Str("path", path).Str("type", info.Type).Msg("recorded token info")
	return path, nil
}

// List enumerates every record in the directory, optionally filtered by
// recipe type tag. Records appear in file-system enumeration order. A
// missing directory yields an empty result. Unparseable files are skipped
// with a warning.
func (s *Store) List(filterType string) ([]*TokenInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read output directory %s: %w", s.dir, err)
	}

	var infos []*TokenInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("cannot read token info record")
			continue
		}

		var info TokenInfo
		if err := json.Unmarshal(data, &info); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("skipping unparseable token info record")
			continue
		}

		if filterType != "" && info.Type != filterType {
			continue
		}
		infos = append(infos, &info)
	}

	return infos, nil
}
