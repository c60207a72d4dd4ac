package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "ZONE_ROYALE_"

// Load builds a Config from defaults, the TOML file at path and environment overrides
// Empty path skips the file; a missing envFile is ignored, process environment wins over it
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
		}
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := fileEnv[EnvPrefix+key]
		return v, ok
	}
	if err := applyOverrides(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// override binds an environment key to a setter
type override struct {
	key string
	set func(*Config, string) error
}

var overrides = []override{
	{"TIE_BREAK", func(c *Config, v string) error { c.Combat.TieBreak = v; return nil }},
	{"ZONE_RADIUS", floatSetter(func(c *Config) *float64 { return &c.Zone.Radius })},
	{"ZONE_SHRINK_RATE", floatSetter(func(c *Config) *float64 { return &c.Zone.ShrinkRate })},
	{"ZONE_MIN_RADIUS", floatSetter(func(c *Config) *float64 { return &c.Zone.MinRadius })},
	{"HIT_RADIUS", floatSetter(func(c *Config) *float64 { return &c.Combat.HitRadius })},
	{"MAX_PLAYERS", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Arena.MaxPlayers = n
		return nil
	}},
	{"AUDIO_ENABLED", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Audio.Enabled = b
		return nil
	}},
	// 0-100 like a mixer knob
	{"MASTER_VOLUME", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Audio.MasterVolume = float64(min(max(n, 0), 100)) / 100
		return nil
	}},
	{"PERSIST_TIMEOUT", func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Store.PersistTimeout = Duration{d}
		return nil
	}},
}

func floatSetter(field func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func applyOverrides(cfg *Config, lookup func(string) (string, bool)) error {
	for _, o := range overrides {
		v, ok := lookup(o.key)
		if !ok || v == "" {
			continue
		}
		if err := o.set(cfg, v); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, o.key, v, err)
		}
	}
	return nil
}
