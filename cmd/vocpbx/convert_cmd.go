// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ik5/vocpbx"
	"github.com/ik5/vocpbx/formats/wav"
	"github.com/ik5/vocpbx/sound"
)

var (
	convertRate int

	convertCmd = &cobra.Command{
		Use:   "convert NAME OUT.wav",
		Short: "Export a sound as an 8-bit mono WAV file",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}
)

func init() {
	convertCmd.Flags().IntVarP(&convertRate, "rate", "r", 0, "resample to this rate in Hz (0 keeps the sound's rate)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	name, out := args[0], args[1]

	cache, _, closer, err := assets()
	if err != nil {
		return err
	}
	defer closer()

	buf, err := cache.Load(name)
	if err != nil {
		return err
	}

	if convertRate > 0 && convertRate != buf.SampleRate() {
		buf, err = vocpbx.ToPCM8(sound.NewStream(buf, 0), convertRate)
		if err != nil {
			return err
		}
	}

	if err := writeWAV(out, buf); err != nil {
		return err
	}

	logger.Info("wrote sound", "name", name, "path", out,
		"size", humanize.Bytes(uint64(buf.Size())), "rate", buf.SampleRate())

	return nil
}

func writeWAV(path string, buf *sound.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := wav.WriteSoundBuffer(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}
