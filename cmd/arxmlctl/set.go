package main

import (
	"fmt"

	"github.com/ecutools/arxmlkit/pkg/arxml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var setOut string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setOut, "out", "", "Write result to this path instead of overwriting the input")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <tag> <name> <value>",
		Short: "Set an attribute on every element with a tag",
		Long: `The set command sets an attribute on every element whose tag matches
exactly. Elements that already carry the attribute have its value replaced.

Example:
  arxmlctl set ecu.arxml ECUC-MODULE-CONFIGURATION-VALUES version 1.2.3
  arxmlctl set ecu.arxml AR-PACKAGE STATUS frozen --out frozen.arxml`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	docPath := args[0]
	tag := args[1]
	name := args[2]
	value := args[3]

	printVerbose("Loading document: %s\n", docPath)

	n, err := arxml.SetAttrByTag(docPath, tag, name, value, setOut)
	if err != nil {
		return fmt.Errorf("failed to set attribute: %w", err)
	}

	target := docPath
	if setOut != "" {
		target = setOut
	}
	logger.Info("attributes set",
		zap.String("document", docPath),
		zap.String("tag", tag),
		zap.String("attribute", name),
		zap.Int("affected", n),
		zap.String("saved_to", target))

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]interface{}{
			"document": docPath,
			"tag":      tag,
			"name":     name,
			"value":    value,
			"affected": n,
			"saved_to": target,
		})
	}

	// Text output
	printInfo("\nSetting attribute in %s:\n", docPath)
	printInfo("  Tag: %s\n", tag)
	printInfo("  Name: %s\n", name)
	printInfo("  Value: %s\n", value)
	printInfo("\n✓ Set attribute on %d element(s), saved to %s\n", n, target)

	return nil
}
