// Package internal provides internal implementation for the configx package.
package internal

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvOptions configures environment variable source behavior.
type EnvOptions struct {
	Prefix    string
	Uppercase bool
}

// key normalizes a raw key and reports whether it passes the prefix filter.
func (o EnvOptions) key(raw string) (string, bool) {
	if o.Uppercase {
		raw = strings.ToUpper(raw)
	}
	if o.Prefix == "" {
		return raw, true
	}
	return strings.CutPrefix(raw, o.Prefix)
}

// EnvSource loads configuration from environment variables.
type EnvSource struct {
	opts EnvOptions
}

// NewEnvSource creates a new environment variable source.
func NewEnvSource(opts EnvOptions) *EnvSource {
	return &EnvSource{opts: opts}
}

// Load reads configuration from environment variables.
func (s *EnvSource) Load(ctx context.Context) (map[string]string, error) {
	config := make(map[string]string)

	for _, env := range os.Environ() {
		raw, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if key, ok := s.opts.key(raw); ok {
			config[key] = value
		}
	}

	return config, nil
}

// DotenvSource loads configuration from .env files.
type DotenvSource struct {
	opts  EnvOptions
	paths []string
}

// NewDotenvSource creates a source over the given .env files.
func NewDotenvSource(opts EnvOptions, paths ...string) *DotenvSource {
	return &DotenvSource{opts: opts, paths: paths}
}

// Load parses every existing file; later files override earlier ones.
func (s *DotenvSource) Load(ctx context.Context) (map[string]string, error) {
	config := make(map[string]string)

	for _, path := range s.paths {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for raw, v := range values {
			if key, ok := s.opts.key(raw); ok {
				config[key] = v
			}
		}
	}

	return config, nil
}
