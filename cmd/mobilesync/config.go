// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the CLI's YAML configuration.
type Config struct {
	Database string `yaml:"database"` // replica SQLite file
	StoreID  string `yaml:"store_id"` // this store's id on the authoritative system
	UserID   string `yaml:"user_id"`

	Server struct {
		URL    string `yaml:"url"`
		Secret string `yaml:"secret"` // shared HS256 secret for pull tokens
	} `yaml:"server"`

	Pull struct {
		Limit int `yaml:"limit"`
	} `yaml:"pull"`
}

// LoadConfig reads and validates the YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Database == "" {
		cfg.Database = "mobilesync.db"
	}
	if cfg.Pull.Limit <= 0 {
		cfg.Pull.Limit = 500
	}
	if cfg.StoreID == "" {
		return nil, fmt.Errorf("config %s: store_id is required", path)
	}
	if cfg.Server.URL == "" {
		return nil, fmt.Errorf("config %s: server.url is required", path)
	}
	return cfg, nil
}
