package main

import (
	"fmt"

	"github.com/ecutools/arxmlkit/pkg/arxml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var deleteOut string

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().StringVar(&deleteOut, "out", "", "Write result to this path instead of overwriting the input")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <tag> <name>",
		Short: "Remove an attribute where it exists",
		Long: `The delete command removes an attribute from every element whose tag
matches exactly and that carries the attribute. Deleting an attribute that no
element carries is not an error and reports zero.

Example:
  arxmlctl delete ecu.arxml ECUC-MODULE-CONFIGURATION-VALUES UUID
  arxmlctl delete ecu.arxml AR-PACKAGE STATUS --out cleaned.arxml`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	docPath := args[0]
	tag := args[1]
	name := args[2]

	printVerbose("Loading document: %s\n", docPath)

	n, err := arxml.DeleteAttrByTag(docPath, tag, name, deleteOut)
	if err != nil {
		return fmt.Errorf("failed to delete attribute: %w", err)
	}

	target := docPath
	if deleteOut != "" {
		target = deleteOut
	}
	logger.Info("attributes deleted",
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
			"affected": n,
			"saved_to": target,
		})
	}

	printInfo("\nDeleting attribute in %s:\n", docPath)
	printInfo("  Tag: %s\n", tag)
	printInfo("  Name: %s\n", name)
	printInfo("\n✓ Deleted attribute from %d element(s), saved to %s\n", n, target)

	return nil
}
