package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/augustin-cheron/blockzilla/analyzer"
)

func newCmd_Analyze() *cli.Command {
	return &cli.Command{
		Name:        "analyze",
		Description: "Stream a compact.bin file and print its per-field byte breakdown.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "path to a compact.bin file",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit-blocks",
				Usage: "stop after this many blocks (0 means no limit)",
			},
		},
		Action: func(c *cli.Context) error {
			inputPath := c.String("input")
			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("opening %s: %w", inputPath, err)
			}
			defer f.Close()

			rep, err := analyzer.Analyze(f, c.Int("limit-blocks"))
			if err != nil {
				return err
			}
			printReport(rep)
			return nil
		},
	}
}

func printReport(rep *analyzer.Report) {
	klog.Infof("blocks: %d, transactions: %d (%d with metadata)", rep.Blocks, rep.Transactions, rep.TransactionsWithMeta)
	fmt.Printf("frame length prefixes: %s\n", humanize.Bytes(rep.FrameLengthBytes))
	fmt.Printf("block headers:         %s\n", humanize.Bytes(rep.HeaderBytes))
	fmt.Printf("transactions + meta:    %s\n", humanize.Bytes(rep.TxBytes))
	fmt.Println()
	fmt.Println("transaction breakdown:")
	fmt.Printf("  signatures:             %s\n", humanize.Bytes(rep.Tx.Signatures))
	fmt.Printf("  message header:         %s\n", humanize.Bytes(rep.Tx.MessageHeader))
	fmt.Printf("  account keys:           %s\n", humanize.Bytes(rep.Tx.AccountKeys))
	fmt.Printf("  recent blockhash:       %s\n", humanize.Bytes(rep.Tx.RecentBlockhash))
	fmt.Printf("  instruction container:  %s\n", humanize.Bytes(rep.Tx.InstructionContainer))
	fmt.Printf("  instruction accounts:   %s\n", humanize.Bytes(rep.Tx.InstructionAccounts))
	fmt.Printf("  instruction data:       %s\n", humanize.Bytes(rep.Tx.InstructionData))
	fmt.Printf("  address table lookups:  %s\n", humanize.Bytes(rep.Tx.AddressTableLookups))
	fmt.Println()
	fmt.Println("metadata breakdown:")
	fmt.Printf("  log stream containers:  %s\n", humanize.Comma(int64(rep.Meta.LogsContainer)))
	fmt.Printf("  log strings:            %s\n", humanize.Bytes(rep.Meta.LogStrings))
	fmt.Printf("  log events:             %s\n", humanize.Bytes(rep.Meta.EventsTotal))
	fmt.Println()
	fmt.Println("log events by kind:")
	for kind, tally := range rep.ByLogKind {
		fmt.Printf("  %-32s count=%-10s bytes=%s\n", kind, humanize.Comma(int64(tally.Count)), humanize.Bytes(tally.Bytes))
	}
}
