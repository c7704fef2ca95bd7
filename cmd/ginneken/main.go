// Command ginneken runs the Van Ginneken buffer-insertion dynamic
// program over a technology file and a trace-tree file, writing the
// resulting tree as JSON (and optionally a PNG rendering).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanelox/vanginneken/ginneken"
	"github.com/yanelox/vanginneken/ioadapter"
	"github.com/yanelox/vanginneken/render"
)

var (
	outputPath string
	debugMode  bool
	pngPath    string
)

var rootCmd = &cobra.Command{
	Use:   "ginneken",
	Short: "Van Ginneken buffer insertion over a rectilinear trace tree",
}

var runCmd = &cobra.Command{
	Use:   "run <technology.json> <trace-tree.json>",
	Short: "Insert buffers into a trace tree and emit the resulting tree as JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output JSON path (default: <trace-tree-basename>_out.json)")
	runCmd.Flags().BoolVar(&debugMode, "debug", false, "include per-node children arrays and aggregate C/Q in the output document")
	runCmd.Flags().StringVar(&pngPath, "png", "", "also render the output tree to this PNG path")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	techPath, treePath := args[0], args[1]

	techData, err := os.ReadFile(techPath)
	if err != nil {
		return fmt.Errorf("reading technology file: %w", err)
	}
	treeData, err := os.ReadFile(treePath)
	if err != nil {
		return fmt.Errorf("reading trace-tree file: %w", err)
	}

	tech, err := ioadapter.ParseTechnology(techData)
	if err != nil {
		return fmt.Errorf("parsing technology file: %w", err)
	}
	tree, err := ioadapter.ParseTraceTree(treeData)
	if err != nil {
		return fmt.Errorf("parsing trace-tree file: %w", err)
	}

	result, err := ginneken.Run(tech, tree)
	if err != nil {
		return fmt.Errorf("running buffer insertion: %w", err)
	}

	var opts []ioadapter.Option
	if debugMode {
		opts = append(opts, ioadapter.WithDebug())
	}
	out, err := ioadapter.DumpResult(result, opts...)
	if err != nil {
		return fmt.Errorf("dumping result: %w", err)
	}

	dest := outputPath
	if dest == "" {
		base := filepath.Base(treePath)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		dest = base + "_out.json"
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (root Q=%.6g, root C=%.6g)\n", dest, result.Q, result.C)

	if pngPath != "" {
		f, err := os.Create(pngPath)
		if err != nil {
			return fmt.Errorf("creating PNG file: %w", err)
		}
		defer f.Close()
		if err := render.RenderTree(result, f); err != nil {
			return fmt.Errorf("rendering PNG: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngPath)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
