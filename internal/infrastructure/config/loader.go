package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Config holds all loaded configurations
type Config struct {
	Game *GameConfig
	Text *TextTable
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	var cfg GameConfig
	if err := l.readJSON("game.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.Display.Framerate <= 0 {
		return nil, fmt.Errorf("failed to parse game.json: framerate must be positive, got %d", cfg.Display.Framerate)
	}
	return &cfg, nil
}

// LoadText loads text.json
func (l *Loader) LoadText() (*TextTable, error) {
	var entries map[string]string
	if err := l.readJSON("text.json", &entries); err != nil {
		return nil, err
	}
	return NewTextTable(entries), nil
}

// LoadAll loads every configuration file
func (l *Loader) LoadAll() (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	text, err := l.LoadText()
	if err != nil {
		return nil, err
	}

	return &Config{
		Game: game,
		Text: text,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
