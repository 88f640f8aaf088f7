package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/metric"
	"github.com/katalvlaran/dvoronoi/site"
)

// errInvalidConfig is returned when a configuration value is out of range.
var errInvalidConfig = errors.New("dvoronoi: invalid config")

// Config describes one run. The zero value of a field in a YAML file means
// "keep the default".
type Config struct {
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	Sites   int          `yaml:"sites"`
	Seed    int64        `yaml:"seed"`
	Metric  string       `yaml:"metric"`
	Steps   int          `yaml:"steps"`
	Workers int          `yaml:"workers"`
	Points  []SiteConfig `yaml:"points"`
}

// SiteConfig is an explicit site. An omitted or zero weight means 1.
type SiteConfig struct {
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Weight float32 `yaml:"weight"`
}

// defaultConfig mirrors the flag defaults.
func defaultConfig() Config {
	return Config{
		Width:  64,
		Height: 48,
		Sites:  16,
		Seed:   1,
		Metric: metric.NameEuclidean,
		Steps:  -1,
	}
}

// loadConfig decodes path over base. Unknown keys are rejected.
func loadConfig(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, errors.Wrap(err, "dvoronoi: opening config")
	}
	defer f.Close()

	cfg := base
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return base, errors.Wrapf(err, "dvoronoi: decoding %s", path)
	}
	return cfg, nil
}

// overrideFromFlags copies every flag the user set explicitly from flagged
// into cfg, so the command line wins over the file.
func overrideFromFlags(cfg *Config, flagged Config, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = flagged.Width
		case "height":
			cfg.Height = flagged.Height
		case "sites":
			cfg.Sites = flagged.Sites
		case "seed":
			cfg.Seed = flagged.Seed
		case "metric":
			cfg.Metric = flagged.Metric
		case "steps":
			cfg.Steps = flagged.Steps
		case "workers":
			cfg.Workers = flagged.Workers
		}
	})
}

// validate checks ranges and returns the grid domain.
func (c Config) validate() (grid.BoundingBox, error) {
	if c.Sites < 0 {
		return grid.BoundingBox{}, errors.Wrapf(errInvalidConfig, "sites cannot be negative (%d)", c.Sites)
	}
	if c.Workers < 0 {
		return grid.BoundingBox{}, errors.Wrapf(errInvalidConfig, "workers cannot be negative (%d)", c.Workers)
	}
	b, err := grid.NewBoundingBox(0, 0, c.Width, c.Height)
	if err != nil {
		return grid.BoundingBox{}, errors.Wrap(err, "dvoronoi: grid size")
	}
	return b, nil
}

// sites returns the explicit points, or Sites random points when none are
// configured.
func (c Config) sites() []site.Weighted {
	if len(c.Points) == 0 {
		return generateSites(c.Seed, c.Width, c.Height, c.Sites)
	}
	out := make([]site.Weighted, len(c.Points))
	for i, p := range c.Points {
		w := p.Weight
		if w == 0 {
			w = 1
		}
		out[i] = site.New(p.X, p.Y, w)
	}
	return out
}
