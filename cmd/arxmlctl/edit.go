package main

import (
	"fmt"

	"github.com/ecutools/arxmlkit/pkg/arxml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var editOut string

func init() {
	cmd := newEditCmd()
	cmd.Flags().StringVar(&editOut, "out", "", "Write result to this path instead of overwriting the input")
	rootCmd.AddCommand(cmd)
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file> <tag> <name> <value>",
		Short: "Overwrite an attribute where it already exists",
		Long: `The edit command overwrites an attribute on every element whose tag
matches exactly and that already carries the attribute. Elements without the
attribute are left alone, so the reported count can be smaller than the number
of matching elements.

Example:
  arxmlctl edit ecu.arxml ECUC-CONTAINER-VALUE UUID 00000000-0000-0000-0000-000000000000
  arxmlctl edit ecu.arxml AR-PACKAGE UUID 1111 --out patched.arxml`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args)
		},
	}
	return cmd
}

func runEdit(args []string) error {
	docPath := args[0]
	tag := args[1]
	name := args[2]
	value := args[3]

	printVerbose("Loading document: %s\n", docPath)

	n, err := arxml.EditAttrByTag(docPath, tag, name, value, editOut)
	if err != nil {
		return fmt.Errorf("failed to edit attribute: %w", err)
	}

	target := docPath
	if editOut != "" {
		target = editOut
	}
	logger.Info("attributes edited",
		zap.String("document", docPath),
		zap.String("tag", tag),
		zap.String("attribute", name),
		zap.Int("affected", n),
		zap.String("saved_to", target))

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

	printInfo("\nEditing attribute in %s:\n", docPath)
	printInfo("  Tag: %s\n", tag)
	printInfo("  Name: %s\n", name)
	printInfo("  Value: %s\n", value)
	printInfo("\n✓ Edited attribute on %d element(s), saved to %s\n", n, target)

	return nil
}
