package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// =============================================================================
// Styles
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - best values
	colorGreen = lipgloss.Color("35")  // Green - proven optimal
	colorGray  = lipgloss.Color("245") // Gray - headers
	colorDim   = lipgloss.Color("240") // Dim gray - borders

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder  = lipgloss.NewStyle().Foreground(colorDim)
	styleBest    = lipgloss.NewStyle().Foreground(colorCyan)
	styleOptimal = lipgloss.NewStyle().Foreground(colorGreen)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Run Summary
// =============================================================================

// printResults renders one row per run. The lower-bound columns are shown
// only for exact solvers.
func printResults(w io.Writer, results []runResult, exact bool) {
	best := objective.NoTour
	for _, r := range results {
		best = min(best, r.Length)
	}

	headers := []string{"Run", "ID", "Seed", "Length", "FEs", "Elapsed"}
	if exact {
		headers = append(headers, "Bound", "Optimal")
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Index),
			shortID(r.ID),
			strconv.FormatInt(r.Seed, 10),
			formatLength(r.Length),
			strconv.FormatInt(r.FEs, 10),
			r.Elapsed.Round(time.Millisecond).String(),
		}
		if exact {
			row = append(row, formatLength(r.LowerBound), strconv.FormatBool(r.Optimal))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(results) {
				return styleCell
			}
			r := results[row]
			switch {
			case col == 3 && r.Length == best:
				return styleBest.Padding(0, 1)
			case exact && col == 7 && r.Optimal:
				return styleOptimal.Padding(0, 1)
			}
			return styleCell
		})

	fmt.Fprintln(w, t.Render())
}

// printCandidates lists the candidate rows of the first limit nodes.
func printCandidates(w io.Writer, rows [][]int, limit int) {
	limit = min(limit, len(rows))
	out := make([][]string, limit)
	for v := 0; v < limit; v++ {
		cells := make([]string, 0, len(rows[v])+1)
		cells = append(cells, strconv.Itoa(v+1))
		for _, u := range rows[v] {
			cells = append(cells, strconv.Itoa(u))
		}
		out[v] = cells
	}

	headers := []string{"Node"}
	if limit > 0 {
		for id := 1; id < len(out[0]); id++ {
			headers = append(headers, "#"+strconv.Itoa(id))
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(out...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})

	fmt.Fprintln(w, t.Render())
}

// =============================================================================
// Utilities
// =============================================================================

func formatLength(l int64) string {
	if l == objective.NoTour {
		return "-"
	}
	return strconv.FormatInt(l, 10)
}

// shortID keeps the first block of a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
