package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

var gitCommitSHA = ""

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-interrupt:
			fmt.Println()
			klog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(interrupt)
	}()

	app := &cli.App{
		Name:        "blockzilla",
		Version:     gitCommitSHA,
		Description: "Two-pass compaction of Solana blockchain archives into a compact, key-registry-backed binary format.",
		Flags:       NewKlogFlagSet(),
		Commands: []*cli.Command{
			newCmd_BuildBlockhashRegistry(),
			newCmd_BuildRegistry(),
			newCmd_Compact(),
			newCmd_Build(),
			newCmd_BuildAll(),
			newCmd_Analyze(),
			newCmd_DumpLogStrings(),
		},
	}

	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.RunContext(ctx, os.Args); err != nil {
		klog.Fatal(err)
	}
}
