package main

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/ecutools/arxmlkit/pkg/arxml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	findMode      string
	findAttrValue string
)

func init() {
	cmd := newFindCmd()
	cmd.Flags().StringVar(&findMode, "mode", "tag", "Query mode (tag, path, attr)")
	cmd.Flags().StringVar(&findAttrValue, "attr-value", "", "Attribute value to match in attr mode")
	rootCmd.AddCommand(cmd)
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <file> <query>",
		Short: "Find elements by tag, path, or attribute",
		Long: `The find command locates elements in a document and prints their tag,
attributes, text, and child count.

In tag mode the query is an exact tag name, matched at any depth including
the root. In path mode the query is a path expression such as
"AR-PACKAGES/AR-PACKAGE" or "//SHORT-NAME". In attr mode the query is an
attribute name and --attr-value supplies the exact value to match.

Example:
  arxmlctl find ecu.arxml ECUC-CONTAINER-VALUE
  arxmlctl find ecu.arxml "AR-PACKAGES/AR-PACKAGE/SHORT-NAME" --mode path
  arxmlctl find ecu.arxml UUID --mode attr --attr-value 6eed0f5c-2f4b-4e3a-9c1d-8b7a5e4d3c2b
  arxmlctl find ecu.arxml SHORT-NAME --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

func runFind(args []string) error {
	docPath := args[0]
	query := args[1]

	printVerbose("Loading document: %s\n", docPath)

	ctx := arxml.New()
	if err := ctx.Load(docPath); err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	var (
		els []*etree.Element
		err error
	)
	switch findMode {
	case "tag":
		els, err = ctx.FindByTag(query)
	case "path":
		els, err = ctx.FindByPath(query)
	case "attr":
		els, err = ctx.FindByAttr(query, findAttrValue)
	default:
		return fmt.Errorf("unknown mode %q (want tag, path, or attr)", findMode)
	}
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}

	logger.Info("find complete",
		zap.String("document", docPath),
		zap.String("mode", findMode),
		zap.String("query", query),
		zap.Int("matches", len(els)))

	infos := make([]arxml.ElementInfo, 0, len(els))
	for _, e := range els {
		infos = append(infos, arxml.Info(e))
	}

	if jsonOut {
		return printJSON(infos)
	}

	printInfo("Found %d element(s)\n", len(infos))
	for _, info := range infos {
		printInfo("\n<%s>\n", info.Tag)
		for _, a := range info.Attrs {
			printInfo("  @%s = %s\n", a.Key, a.Value)
		}
		if info.Text != "" {
			printInfo("  text: %s\n", info.Text)
		}
		if info.Children > 0 {
			printInfo("  children: %d\n", info.Children)
		}
	}

	return nil
}
