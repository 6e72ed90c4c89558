package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/augustin-cheron/blockzilla/analyzer"
	"github.com/augustin-cheron/blockzilla/keyregistry"
	"github.com/augustin-cheron/blockzilla/logstream"
)

func newCmd_DumpLogStrings() *cli.Command {
	return &cli.Command{
		Name:        "dump-log-strings",
		Description: "Stream a compact.bin file and print every rendered runtime log line.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "path to a compact.bin file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "registry",
				Usage:    "path to the epoch's registry.bin, used to resolve program ids embedded in rendered lines",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output path (defaults to stdout)",
			},
			&cli.IntFlag{
				Name:  "limit-blocks",
				Usage: "stop after this many blocks (0 means no limit)",
			},
			&cli.IntFlag{
				Name:  "max-lines",
				Usage: "stop after this many lines (0 means no limit)",
			},
			&cli.BoolFlag{
				Name:  "include-data",
				Usage: "also dump each Program data/return event's decoded token blob",
			},
		},
		Action: func(c *cli.Context) error {
			inputPath := c.String("input")
			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("opening %s: %w", inputPath, err)
			}
			defer f.Close()

			registryBytes, err := os.ReadFile(c.String("registry"))
			if err != nil {
				return fmt.Errorf("reading registry %s: %w", c.String("registry"), err)
			}
			store, _, err := keyregistry.Load(registryBytes)
			if err != nil {
				return fmt.Errorf("loading registry: %w", err)
			}

			out := os.Stdout
			if outPath := c.String("out"); outPath != "" {
				created, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer created.Close()
				out = created
			}

			includeData := c.Bool("include-data")
			if includeData {
				return dumpWithSpew(f, out, store, c.Int("limit-blocks"), c.Int("max-lines"))
			}
			return analyzer.DumpLogStrings(f, out, store, c.Int("limit-blocks"), c.Int("max-lines"), false)
		},
	}
}

// dumpWithSpew is the --include-data path: it writes the normal rendered
// lines via DumpLogStrings, then spew.Fdump's the decoded Program
// data/return token blobs to the same writer as a human-readable debug
// trailer, matching cmd-dump-car.go's own use of spew.Dump for structured
// debug output.
func dumpWithSpew(f *os.File, out *os.File, store logstream.KeyStore, limitBlocks, maxLines int) error {
	if err := analyzer.DumpLogStrings(f, out, store, limitBlocks, maxLines, false); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("rewinding input: %w", err)
	}
	tokens, err := analyzer.CollectDataTokens(f, limitBlocks, maxLines)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "--- decoded data/return token blobs ---")
	spew.Fdump(out, tokens)
	return nil
}
