// SPDX-License-Identifier: EPL-2.0

// Command vocpbx inspects, converts and plays the VOC sound effects of a game
// data directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/vocpbx"
	"github.com/ik5/vocpbx/asset"
	"github.com/ik5/vocpbx/formats/voc"
	"github.com/ik5/vocpbx/playback"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	cfg        Config
	logger     *log.Logger

	rootCmd = &cobra.Command{
		Use:          "vocpbx",
		Short:        "Inspect, convert and play Creative Voice sound effects",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
)

func setup(cmd *cobra.Command) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	c, err := loadConfig(viper.GetViper(), cmd.Flags())
	if err != nil {
		return err
	}
	cfg = c

	logger, err = setupLog(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("using configuration file", "path", used)
	}

	return nil
}

// assets opens the configured data directory. The returned func releases the
// cache and the decompressor.
func assets() (*asset.Cache, asset.ByteSource, func(), error) {
	mode, err := cfg.continueMode()
	if err != nil {
		return nil, nil, nil, err
	}

	src, err := asset.NewZstdSource(asset.FSSource{FS: os.DirFS(cfg.Root)})
	if err != nil {
		return nil, nil, nil, err
	}

	cache := asset.NewCache(src,
		asset.WithContainer(cfg.Container),
		asset.WithLogger(logger),
		asset.WithRegistry(vocpbx.DefaultRegistry()),
		asset.WithVOCOptions(voc.WithContinueMode(mode)),
	)

	return cache, src, func() {
		cache.ReleaseAll()
		src.Close()
	}, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default "+defaultConfigPath()+")")
	flags.String("root", ".", "game data directory holding unpacked containers")
	flags.String("container", asset.DefaultContainer, "container the sounds are read from")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("mixer-rate", playback.DefaultMixerRate, "output sample rate in Hz")
	flags.String("continue", voc.ContinueCompat.String(), "sound continue handling (compat, trimmed)")

	for _, key := range configKeys {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	setDefaults(viper.GetViper())

	rootCmd.AddCommand(infoCmd, convertCmd, playCmd, configCmd)
}

func defaultConfigPath() string {
	p, err := gap.NewScope(gap.User, "vocpbx").ConfigPath("vocpbx.yml")
	if err != nil {
		return "vocpbx.yml"
	}
	return p
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "vocpbx")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		log.Warn("Could not find configuration directory", "err", err)
		return
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "vocpbx")}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("vocpbx")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}
}
