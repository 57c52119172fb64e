// Package config implements the optional shell configuration layer
// spec.md §6 describes ("not part of the core"): a base URL, user
// agent, per-app winter-semester key override, and bootstrap payload
// overrides, loaded with koanf the way the rest of this module's
// ambient stack follows the teacher's configuration conventions.
package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the shell's runtime configuration.
type Config struct {
	BaseURL   string `koanf:"base_url"`
	UserAgent string `koanf:"user_agent"`
	// SemesterOverride corrects the university's own inconsistent
	// winter-semester numbering: some endpoints expect "093", others
	// the newer "0923" (spec.md §9 supplemented from original_source/).
	SemesterOverride string `koanf:"semester_override"`
	WD01Payload      string `koanf:"wd01_payload"`
	WD02Payload      string `koanf:"wd02_payload"`
}

var defaults = map[string]any{
	"base_url":   "https://ecc.ssu.ac.kr",
	"user_agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
}

// Load builds a Config from, in increasing precedence: built-in
// defaults, an optional YAML file at path (skipped if path is ""), and
// environment variables prefixed WDCLIENT_ (e.g. WDCLIENT_BASE_URL).
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("WDCLIENT_", ".", envKeyMap), nil); err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func envKeyMap(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s[len("WDCLIENT_"):] {
		if r >= 'A' && r <= 'Z' {
			out = append(out, byte(r-'A'+'a'))
		} else {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// Watch invokes onChange whenever the file at path is modified on
// disk, for the optional shell's hot-reload convenience. It returns a
// stop function that closes the underlying watcher.
func Watch(path string, onChange func(Config)) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: new watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	go func() {
		for event := range w.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if cfg, err := Load(path); err == nil {
				onChange(cfg)
			}
		}
	}()
	return w.Close, nil
}
