// Command ginneken-sweep re-runs the buffer-insertion dynamic program
// over a single swept sink length, reporting per-length wall-clock
// time and achieved root Q.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ginneken"
	"github.com/yanelox/vanginneken/ioadapter"
	"github.com/yanelox/vanginneken/render"
	"github.com/yanelox/vanginneken/ttree"
)

var (
	csvPath     string
	pngTimePath string
	pngRatPath  string
)

var rootCmd = &cobra.Command{
	Use:   "ginneken-sweep <technology.json> <start-len> <max-len>",
	Short: "Sweep a single sink's wire length and report time/RAT dependence",
	Args:  cobra.ExactArgs(3),
	RunE:  runSweep,
}

func init() {
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "write per-length time/Q rows to this CSV path")
	rootCmd.Flags().StringVar(&pngTimePath, "png-time", "", "render wall-clock time vs. length to this PNG path")
	rootCmd.Flags().StringVar(&pngRatPath, "png-rat", "", "render achieved root Q vs. length to this PNG path")
}

// sweepTree builds a single-sink trace tree: a root buffer at the
// origin driving a terminal at (0, length) via a straight vertical
// edge.
func sweepTree(length int, sinkC, sinkQ float64) (*ttree.Tree, error) {
	nodes := []ttree.Node{
		{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer, Name: "root"},
		{ID: 1, Point: geom.Point{X: 0, Y: length}, Kind: ttree.Terminal, Name: "sink",
			Sink: ttree.TerminalLoad{C: sinkC, Q: sinkQ}},
	}
	edges := []ttree.Edge{
		{ID: 0, Parent: 0, Child: 1, Segments: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: length}}},
	}
	return ttree.New(nodes, edges)
}

func runSweep(cmd *cobra.Command, args []string) error {
	techPath := args[0]
	startLen, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parsing start-len: %w", err)
	}
	maxLen, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("parsing max-len: %w", err)
	}
	if maxLen < startLen {
		return fmt.Errorf("max-len (%d) must be >= start-len (%d)", maxLen, startLen)
	}

	techData, err := os.ReadFile(techPath)
	if err != nil {
		return fmt.Errorf("reading technology file: %w", err)
	}
	tech, err := ioadapter.ParseTechnology(techData)
	if err != nil {
		return fmt.Errorf("parsing technology file: %w", err)
	}

	var lengths []float64
	var times []float64
	var qs []float64

	for length := startLen; length <= maxLen; length++ {
		tree, err := sweepTree(length, 1, 10)
		if err != nil {
			return fmt.Errorf("building swept tree at length %d: %w", length, err)
		}

		start := time.Now()
		result, err := ginneken.Run(tech, tree)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("running buffer insertion at length %d: %w", length, err)
		}

		lengths = append(lengths, float64(length))
		times = append(times, elapsed.Seconds())
		qs = append(qs, result.Q)
		fmt.Fprintf(cmd.OutOrStdout(), "length=%d time=%s Q=%.6g\n", length, elapsed, result.Q)
	}

	if csvPath != "" {
		if err := writeCSV(csvPath, lengths, times, qs); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}
	if pngTimePath != "" {
		if err := writePNGChart(pngTimePath, lengths, times); err != nil {
			return fmt.Errorf("rendering time PNG: %w", err)
		}
	}
	if pngRatPath != "" {
		if err := writePNGChart(pngRatPath, lengths, qs); err != nil {
			return fmt.Errorf("rendering RAT PNG: %w", err)
		}
	}
	return nil
}

func writeCSV(path string, lengths, times, qs []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"length", "time_seconds", "q"}); err != nil {
		return err
	}
	for i := range lengths {
		row := []string{
			strconv.FormatFloat(lengths[i], 'g', -1, 64),
			strconv.FormatFloat(times[i], 'g', -1, 64),
			strconv.FormatFloat(qs[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writePNGChart(path string, xs, ys []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.RenderLineChart(xs, ys, f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
