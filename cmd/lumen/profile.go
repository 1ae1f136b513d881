package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"lumen/internal/render"
)

// lumen.toml is an optional per-project rendering profile, discovered by
// walking upward from the working directory.

type profileConfig struct {
	Render renderConfig `toml:"render"`
}

type renderConfig struct {
	Indent       *int    `toml:"indent"`
	MaxDepth     *int    `toml:"max_depth"`
	Radix        *string `toml:"radix"`
	Suffix       *bool   `toml:"suffix"`
	ByteLimit    *int    `toml:"byte_limit"`
	Rainbow      *bool   `toml:"rainbow"`
	ForceNewline *bool   `toml:"force_newline"`
	ListWrap     *int    `toml:"list_wrap"`
	ArrayWrap    *int    `toml:"array_wrap"`
	RecordWrap   *int    `toml:"record_wrap"`
	TupleWrap    *int    `toml:"tuple_wrap"`
}

func findLumenToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lumen.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProfile(startDir string) (*profileConfig, bool, error) {
	path, ok, err := findLumenToml(startDir)
	if err != nil || !ok {
		return nil, false, err
	}
	var cfg profileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return &cfg, true, nil
}

func (p *profileConfig) apply(s *render.Settings) {
	r := p.Render
	if r.Indent != nil {
		s.Indent = *r.Indent
	}
	if r.MaxDepth != nil {
		s.MaxDepth = *r.MaxDepth
	}
	if r.Radix != nil {
		if radix, err := parseRadix(*r.Radix); err == nil {
			s.Radix = radix
		}
	}
	if r.Suffix != nil {
		s.PrintSuffix = *r.Suffix
	}
	if r.ByteLimit != nil {
		s.ByteLimit = *r.ByteLimit
	}
	if r.Rainbow != nil {
		s.RainbowBracket = *r.Rainbow
	}
	if r.ForceNewline != nil {
		s.ForceNewline = *r.ForceNewline
	}
	if r.ListWrap != nil {
		s.ListWrap = wrapFromInt(*r.ListWrap)
	}
	if r.ArrayWrap != nil {
		s.ArrayWrap = wrapFromInt(*r.ArrayWrap)
	}
	if r.RecordWrap != nil {
		s.RecordWrap = wrapFromInt(*r.RecordWrap)
	}
	if r.TupleWrap != nil {
		s.TupleWrap = wrapFromInt(*r.TupleWrap)
	}
}
