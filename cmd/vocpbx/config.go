// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/ik5/vocpbx/asset"
	"github.com/ik5/vocpbx/formats/voc"
	"github.com/ik5/vocpbx/playback"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config is the effective CLI configuration. Values come from defaults, the
// config file, the environment and flags, later sources winning.
type Config struct {
	Root      string `env:"VOCPBX_ROOT"`
	Container string `env:"VOCPBX_CONTAINER"`
	LogLevel  string `env:"VOCPBX_LOG_LEVEL"`
	MixerRate int    `env:"VOCPBX_MIXER_RATE"`
	Continue  string `env:"VOCPBX_CONTINUE"`
}

// configKeys name both the config file keys and the persistent flags.
var configKeys = []string{"root", "container", "log-level", "mixer-rate", "continue"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("container", asset.DefaultContainer)
	v.SetDefault("log-level", "info")
	v.SetDefault("mixer-rate", playback.DefaultMixerRate)
	v.SetDefault("continue", voc.ContinueCompat.String())
}

// flagSet reports which flags were given on the command line.
type flagSet interface {
	Changed(name string) bool
}

func loadConfig(v *viper.Viper, flags flagSet) (Config, error) {
	c := Config{
		Root:      v.GetString("root"),
		Container: v.GetString("container"),
		LogLevel:  v.GetString("log-level"),
		MixerRate: v.GetInt("mixer-rate"),
		Continue:  v.GetString("continue"),
	}

	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parsing environment: %w", err)
	}

	// Explicit flags beat the environment.
	if flags.Changed("root") {
		c.Root = v.GetString("root")
	}
	if flags.Changed("container") {
		c.Container = v.GetString("container")
	}
	if flags.Changed("log-level") {
		c.LogLevel = v.GetString("log-level")
	}
	if flags.Changed("mixer-rate") {
		c.MixerRate = v.GetInt("mixer-rate")
	}
	if flags.Changed("continue") {
		c.Continue = v.GetString("continue")
	}

	return c, c.validate()
}

func (c Config) validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: empty root directory", errInvalidConfig)
	}
	if c.MixerRate <= 0 {
		return fmt.Errorf("%w: mixer rate %d", errInvalidConfig, c.MixerRate)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", errInvalidConfig, c.LogLevel)
	}
	if _, err := c.continueMode(); err != nil {
		return err
	}

	return nil
}

func (c Config) continueMode() (voc.ContinueMode, error) {
	switch c.Continue {
	case "", voc.ContinueCompat.String():
		return voc.ContinueCompat, nil
	case voc.ContinueTrimmed.String():
		return voc.ContinueTrimmed, nil
	default:
		return 0, fmt.Errorf("%w: continue mode %q", errInvalidConfig, c.Continue)
	}
}
