package main

import (
	"fmt"
	"strconv"

	"github.com/ecutools/arxmlkit/pkg/arxml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show basic document metadata",
		Long: `The info command parses a document and reports its root tag, element
count, number of distinct tags, and file size.

Example:
  arxmlctl info ecu.arxml
  arxmlctl info ecu.arxml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	docPath := args[0]

	printVerbose("Loading document: %s\n", docPath)

	stats, err := arxml.Stats(docPath)
	if err != nil {
		return fmt.Errorf("failed to get document info: %w", err)
	}

	logger.Info("document inspected",
		zap.String("document", docPath),
		zap.String("elements", stats["elements"]))

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nDocument Information:\n")
	printInfo("  File: %s\n", docPath)
	if size, err := strconv.ParseInt(stats["file_size"], 10, 64); err == nil {
		if size < 1024 {
			printInfo("  Size: %d bytes\n", size)
		} else if size < 1024*1024 {
			printInfo("  Size: %.1f KB\n", float64(size)/1024)
		} else {
			printInfo("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}
	printInfo("  Root tag: %s\n", stats["root_tag"])
	printInfo("  Elements: %s\n", stats["elements"])
	printInfo("  Unique tags: %s\n", stats["unique_tags"])

	return nil
}
