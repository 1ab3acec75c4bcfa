// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/ik5/vocpbx/playback"
	"github.com/ik5/vocpbx/sound"
)

var (
	playLoops   int
	playForever bool

	playCmd = &cobra.Command{
		Use:   "play NAME...",
		Short: "Play sounds on the default audio device",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPlay,
	}
)

func init() {
	playCmd.Flags().IntVarP(&playLoops, "loops", "l", 0, "times the loop region is repeated")
	playCmd.Flags().BoolVar(&playForever, "forever", false, "repeat the loop region until interrupted")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cache, _, closer, err := assets()
	if err != nil {
		return err
	}
	defer closer()

	out, err := playback.NewOutput(cfg.MixerRate, logger)
	if err != nil {
		return err
	}

	loops := playLoops
	if playForever {
		loops = sound.Forever
	}

	for _, name := range args {
		buf, err := cache.Load(name)
		if err != nil {
			return err
		}

		logger.Info("playing", "name", name, "duration", buf.Duration())
		if err := out.Play(cmd.Context(), buf, loops); err != nil {
			return err
		}
	}

	return nil
}
