package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"profilecraft/internal/history"
	"profilecraft/internal/store"
)

const settingsFile = ".profilecraft.yaml"

type Settings struct {
	ExportDir     string `yaml:"export_dir"`
	DesignsFile   string `yaml:"designs_file"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisKey      string `yaml:"redis_key"`
	PreviewAddr   string `yaml:"preview_addr"`
	LogFile       string `yaml:"log_file"`
	StartTemplate string `yaml:"start_template"`
	Seed          uint64 `yaml:"seed"`
	HistoryLimit  int    `yaml:"history_limit"`
}

func defaultSettings(home string) *Settings {
	return &Settings{
		DesignsFile:  filepath.Join(home, ".profilecraft", "designs.json"),
		RedisKey:     store.DefaultRedisKey,
		HistoryLimit: history.DefaultLimit,
	}
}

// defaultSettingsPath is ~/.profilecraft.yaml, or "" without a home
// directory.
func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, settingsFile)
}

// loadSettings reads path over the defaults. A missing file is not an
// error. On a malformed file the defaults are returned with the error.
func loadSettings(path string) (*Settings, error) {
	home, _ := os.UserHomeDir()
	settings := defaultSettings(home)
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}

	loaded := *settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return settings, fmt.Errorf("parse settings %s: %w", path, err)
	}
	loaded.resolvePaths(home)
	if loaded.HistoryLimit <= 0 {
		loaded.HistoryLimit = history.DefaultLimit
	}
	if loaded.RedisKey == "" {
		loaded.RedisKey = store.DefaultRedisKey
	}
	return &loaded, nil
}

func (s *Settings) resolvePaths(home string) {
	s.ExportDir = expandPath(s.ExportDir, home)
	s.DesignsFile = expandPath(s.DesignsFile, home)
	s.LogFile = expandPath(s.LogFile, home)
}

// expandPath expands a leading ~ and makes the path absolute.
func expandPath(value, home string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") && home != "" {
		value = filepath.Join(home, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if abs, err := filepath.Abs(value); err == nil {
			value = abs
		}
	}
	return value
}

// exportPath places filename in the export directory, creating it if
// needed. Without an export directory the file lands in the working
// directory.
func (s *Settings) exportPath(filename string) (string, error) {
	if s.ExportDir == "" {
		return filename, nil
	}
	if err := os.MkdirAll(s.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(s.ExportDir, filename), nil
}
