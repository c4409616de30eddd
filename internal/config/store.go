package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Store loads and saves the category mapping from one YAML file.
type Store struct {
	Path   string
	Logger *slog.Logger

	loadedMTime time.Time
}

// NewStore returns a Store for path. A nil logger discards.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{Path: path, Logger: logger}
}

// Load reads and decodes the file, remembering its modification time.
func (s *Store) Load() (*Config, error) {
	fi, err := os.Stat(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading config file at %s: %w", s.Path, err)
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading config file at %s: %w", s.Path, err)
	}
	cfg, err := Load(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parsing config file at %s: %w", s.Path, err)
	}
	s.loadedMTime = fi.ModTime()
	s.log().Debug("loaded config", "path", s.Path, "categories", cfg.Len())
	return cfg, nil
}

// Save overwrites the file with cfg. If the file was modified after Load,
// the edit is lost; a warning is logged so the user can find out.
func (s *Store) Save(cfg *Config) error {
	if s.changedOnDisk() {
		s.log().Warn("config file changed on disk since it was loaded, overwriting", "path", s.Path)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	// existing files keep their mode; WriteFile only applies it on create
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config file at %s: %w", s.Path, err)
	}
	if fi, err := os.Stat(s.Path); err == nil {
		s.loadedMTime = fi.ModTime()
	}
	s.log().Debug("saved config", "path", s.Path, "categories", cfg.Len())
	return nil
}

func (s *Store) changedOnDisk() bool {
	if s.loadedMTime.IsZero() {
		return false
	}
	fi, err := os.Stat(s.Path)
	if err != nil {
		return false
	}
	return fi.ModTime().After(s.loadedMTime)
}

func (s *Store) log() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
