package main

import (
	"time"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/augustin-cheron/blockzilla/optimizer"
)

// pipelineFlags returns the flags shared by every subcommand that drives
// (all or part of) optimizer.Pipeline.
func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "cache-dir",
			Usage:    "directory containing epoch-<N>.car.zst archives",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "output-dir",
			Usage:    "directory to write epoch-<N>/{registry,blockhash_registry,compact}.bin into",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "resume",
			Usage: "skip a phase whose output file already exists and is non-empty",
		},
		&cli.IntFlag{
			Name:  "progress-every",
			Usage: "log progress every N blocks (0 disables both progress logs and the progress bar)",
			Value: 10_000,
		},
		&cli.Uint64Flag{
			Name:  "bincode-epoch-cutoff",
			Usage: "first epoch whose transaction metadata is protobuf-encoded rather than bincode-encoded",
		},
	}
}

func pipelineFromContext(c *cli.Context) optimizer.Pipeline {
	return optimizer.Pipeline{
		CacheDir:           c.String("cache-dir"),
		OutputDir:          c.String("output-dir"),
		Resume:             c.Bool("resume"),
		ProgressEvery:      c.Int("progress-every"),
		BincodeEpochCutoff: c.Uint64("bincode-epoch-cutoff"),
	}
}

func epochFlag() cli.Flag {
	return &cli.Uint64Flag{
		Name:     "epoch",
		Usage:    "epoch number to process",
		Required: true,
	}
}

func timed(name string, fn func() error) error {
	startedAt := time.Now()
	defer func() {
		klog.Infof("%s: finished in %s", name, time.Since(startedAt))
	}()
	return fn()
}

func newCmd_BuildBlockhashRegistry() *cli.Command {
	return &cli.Command{
		Name:        "build-blockhash-registry",
		Description: "Run phase 1: walk an epoch's archive once, recording each block's last-entry blockhash.",
		Flags:       append(pipelineFlags(), epochFlag()),
		Action: func(c *cli.Context) error {
			p := pipelineFromContext(c)
			epoch := c.Uint64("epoch")
			return timed("build-blockhash-registry", func() error {
				return p.BuildBlockhashRegistry(epoch)
			})
		},
	}
}

func newCmd_BuildRegistry() *cli.Command {
	return &cli.Command{
		Name:        "build-registry",
		Description: "Run phase 2: walk an epoch's archive once, counting every referenced account key.",
		Flags:       append(pipelineFlags(), epochFlag()),
		Action: func(c *cli.Context) error {
			p := pipelineFromContext(c)
			epoch := c.Uint64("epoch")
			return timed("build-registry", func() error {
				return p.BuildKeyRegistry(epoch)
			})
		},
	}
}

func newCmd_Compact() *cli.Command {
	return &cli.Command{
		Name:        "compact",
		Description: "Run phase 3: walk an epoch's archive a second time, emitting the compact block-record stream.",
		Flags:       append(pipelineFlags(), epochFlag()),
		Action: func(c *cli.Context) error {
			p := pipelineFromContext(c)
			epoch := c.Uint64("epoch")
			return timed("compact", func() error {
				return p.Compact(epoch)
			})
		},
	}
}

func newCmd_Build() *cli.Command {
	return &cli.Command{
		Name:        "build",
		Description: "Run all three phases for one epoch, in order.",
		Flags:       append(pipelineFlags(), epochFlag()),
		Action: func(c *cli.Context) error {
			p := pipelineFromContext(c)
			epoch := c.Uint64("epoch")
			return timed("build", func() error {
				return p.Build(epoch)
			})
		},
	}
}

func newCmd_BuildAll() *cli.Command {
	return &cli.Command{
		Name:        "build-all",
		Description: "Discover every epoch-<N>.car.zst under --cache-dir and build each, in ascending epoch order.",
		Flags:       pipelineFlags(),
		Action: func(c *cli.Context) error {
			p := pipelineFromContext(c)
			return timed("build-all", func() error {
				return p.BuildAll()
			})
		},
	}
}
