package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	StepMillis   int     `json:"step_millis"`
	Theme        string  `json:"theme"`
	Battle       bool    `json:"battle"`
	Seed         int64   `json:"seed"`
	SoupDensity  float64 `json:"soup_density"`
	SoupExtent   int     `json:"soup_extent"`
	StartPattern string  `json:"start_pattern"`
	File         string  `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       1024,
		Height:      768,
		StepMillis:  120,
		Theme:       "dark",
		Seed:        42,
		SoupDensity: 0.25,
		SoupExtent:  48,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.StepMillis, "step", c.StepMillis, "simulation step interval in milliseconds")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme")
	fs.BoolVar(&c.Battle, "battle", c.Battle, "start in two-colony battle mode")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Float64Var(&c.SoupDensity, "density", c.SoupDensity, "random soup fill density")
	fs.IntVar(&c.SoupExtent, "extent", c.SoupExtent, "random soup side length in cells")
	fs.StringVar(&c.StartPattern, "pattern", c.StartPattern, "pattern to stamp at the origin on start")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// LoadFile overlays values from a JSON config file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// StepInterval returns the simulation step interval as a duration.
func (c *Config) StepInterval() time.Duration {
	return time.Duration(c.StepMillis) * time.Millisecond
}
