// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ik5/vocpbx/formats/voc"
	"github.com/ik5/vocpbx/sound"
)

var (
	showBlocks bool

	infoCmd = &cobra.Command{
		Use:   "info NAME...",
		Short: "Describe sounds: format, rate, size and loop region",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInfo,
	}
)

func init() {
	infoCmd.Flags().BoolVarP(&showBlocks, "blocks", "b", false, "list the blocks of VOC sounds")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cache, src, closer, err := assets()
	if err != nil {
		return err
	}
	defer closer()

	for _, name := range args {
		raw, err := src.ReadAsset(cfg.Container, name)
		if err != nil {
			return err
		}

		buf, err := cache.Decode(name, raw)
		if err != nil {
			return err
		}

		if err := writeInfo(cmd.OutOrStdout(), name, raw, buf, showBlocks); err != nil {
			return err
		}
	}

	return nil
}

func isVOC(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == "" || ext == ".voc"
}

func writeInfo(w io.Writer, name string, raw []byte, buf *sound.Buffer, blocks bool) error {
	var b strings.Builder

	fmt.Fprintln(&b, name)

	vocFile := isVOC(name)
	var listing []voc.Block
	if vocFile {
		h, err := voc.Walk(raw, func(blk voc.Block) error {
			listing = append(listing, blk)
			return nil
		})
		if err != nil {
			return err
		}

		check := "ok"
		if !h.Checksum() {
			check = "mismatch"
		}
		fmt.Fprintf(&b, "  format:   %s %s (checksum %s)\n", h.Text(), h.VersionString(), check)
	} else {
		fmt.Fprintf(&b, "  format:   %s\n", strings.TrimPrefix(strings.ToLower(path.Ext(name)), "."))
	}

	fmt.Fprintf(&b, "  size:     %s (file %s)\n",
		humanize.Bytes(uint64(buf.Size())), humanize.Bytes(uint64(len(raw))))
	fmt.Fprintf(&b, "  rate:     %d Hz\n", buf.SampleRate())
	fmt.Fprintf(&b, "  duration: %s\n", buf.Duration().Round(time.Millisecond))

	if buf.Looping() {
		fmt.Fprintf(&b, "  loop:     %d..%d (%s)\n",
			buf.LoopStart(), buf.LoopEnd(), humanize.Bytes(uint64(buf.LoopEnd()-buf.LoopStart())))
	} else {
		fmt.Fprintln(&b, "  loop:     none")
	}

	if vocFile {
		fmt.Fprintf(&b, "  blocks:   %d\n", len(listing))
	}
	if blocks {
		for _, blk := range listing {
			fmt.Fprintf(&b, "    %s", blk)
			if rate, ok := blk.SampleRate(); ok {
				fmt.Fprintf(&b, " rate=%d", rate)
			}
			if codec, ok := blk.Codec(); ok {
				fmt.Fprintf(&b, " codec=%q", codec)
			}
			if blk.Truncated() {
				fmt.Fprint(&b, " truncated")
			}
			fmt.Fprintln(&b)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
