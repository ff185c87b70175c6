package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrInvalidFrameSize = errors.New("config: frame dimensions must be positive")
	ErrInvalidRotation  = errors.New("config: rotate must be one of \"\", \"cw\" or \"ccw\"")
)

// Render settings. Every field can be set from a TOML file; the CLI layers
// explicitly set flags on top.
type Config struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	BlockHeight int    `toml:"block-height"`
	Supersample int    `toml:"supersample"`
	Out         string `toml:"out"`
	LogLevel    string `toml:"log-level"`

	// Rotation applied before the first frame ("cw", "ccw" or empty) and
	// the number of rotate steps to apply.
	Rotate string `toml:"rotate"`
	Steps  int    `toml:"steps"`

	// Triangle normal mode: "vertex" or "edge".
	TriangleNormal string `toml:"triangle-normal"`

	// Optional overrides for the reference scene.
	Light *[3]float64 `toml:"light"`
	Eye   *[3]float64 `toml:"eye"`
}

// Get the default configuration.
func Default() Config {
	return Config{
		Width:          400,
		Height:         400,
		BlockHeight:    64,
		Supersample:    1,
		Out:            "frame.png",
		LogLevel:       "notice",
		Steps:          1,
		TriangleNormal: scene.VertexCrossNormal.String(),
	}
}

// Load configuration from a TOML file or http(s) URL on top of the
// defaults. Unknown keys are rejected.
func Load(location string) (Config, error) {
	src, err := openSource(location)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not read %s: %w", src, err)
	}
	return Parse(data)
}

// Parse TOML data on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Check the configuration for invalid values.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidFrameSize
	}
	if c.Supersample < 0 {
		return fmt.Errorf("config: invalid supersample factor %d", c.Supersample)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: invalid rotation step count %d", c.Steps)
	}
	if _, _, err := c.RotationFlags(); err != nil {
		return err
	}
	if _, err := scene.ParseNormalMode(c.TriangleNormal); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Map the rotate setting to a pair of (cw, ccw) flags.
func (c Config) RotationFlags() (cw, ccw bool, err error) {
	switch strings.ToLower(c.Rotate) {
	case "":
		return false, false, nil
	case "cw":
		return true, false, nil
	case "ccw":
		return false, true, nil
	}
	return false, false, ErrInvalidRotation
}

// Build the reference scene with any configured overrides applied.
func (c Config) Scene() (*scene.Scene, error) {
	mode, err := scene.ParseNormalMode(c.TriangleNormal)
	if err != nil {
		return nil, err
	}

	sc := scene.Default(mode)
	if c.Light != nil {
		sc.Light = types.Vec3(*c.Light)
	}
	if c.Eye != nil {
		sc.Camera.Eye = types.Vec3(*c.Eye)
	}
	return sc, nil
}
