// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeConfig(cmd.OutOrStdout(), cfg, viper.ConfigFileUsed())
	},
}

func writeConfig(w io.Writer, c Config, file string) error {
	if file == "" {
		file = "none (default " + defaultConfigPath() + ")"
	}

	_, err := fmt.Fprintf(w, `# config file: %s
root: %q
container: %q
log-level: %q
mixer-rate: %d
continue: %q
`, file, c.Root, c.Container, c.LogLevel, c.MixerRate, c.Continue)

	return err
}
