package main

import (
	"fmt"

	"github.com/ecutools/arxmlkit/pkg/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut   string
	exportQuery string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportOut, "out", "", "Write JSON to this path instead of stdout")
	cmd.Flags().StringVar(&exportQuery, "query", "", "JMESPath expression to evaluate over the export")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a document as JSON",
		Long: `The export command converts a document to its JSON dictionary form.
Attributes become "@"-prefixed keys, repeated child tags collapse into lists,
and text-only elements become scalars. With --query the result of a JMESPath
expression is printed instead; hyphenated keys need quoting inside the
expression.

Example:
  arxmlctl export ecu.arxml
  arxmlctl export ecu.arxml --out ecu.json
  arxmlctl export ecu.arxml --query 'AUTOSAR."AR-PACKAGES"."AR-PACKAGE"."SHORT-NAME"'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	docPath := args[0]

	printVerbose("Exporting document: %s\n", docPath)

	// Query results are always JSON, --json or not
	if exportQuery != "" {
		result, err := export.QueryFile(docPath, exportQuery)
		if err != nil {
			return fmt.Errorf("failed to evaluate query: %w", err)
		}
		logger.Info("query evaluated",
			zap.String("document", docPath),
			zap.String("query", exportQuery))
		return printJSON(result)
	}

	if exportOut != "" {
		if err := export.ToJSONFile(docPath, exportOut); err != nil {
			return fmt.Errorf("failed to export document: %w", err)
		}
		logger.Info("document exported",
			zap.String("document", docPath),
			zap.String("output", exportOut))
		printInfo("✓ Exported %s to %s\n", docPath, exportOut)
		return nil
	}

	content, err := export.ToJSONString(docPath)
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}
	logger.Info("document exported",
		zap.String("document", docPath),
		zap.String("output", "stdout"))
	fmt.Println(content)

	return nil
}
