package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/optimizationBenchmarking/tspSuite-sub014/candidate"
)

const defaultShowCandidates = 10

// candidatesCommand creates the candidates command, which prints the
// nearest-neighbor lists of the configured instance.
func (c *CLI) candidatesCommand() *cobra.Command {
	var (
		m    int
		show int
	)

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Print nearest-neighbor candidate lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if cmd.Flags().Changed("candidates") {
				cfg.Search.Candidates = m
			}
			return runCandidates(cmd.Context(), cmd.OutOrStdout(), cfg, show)
		},
	}

	cmd.Flags().IntVarP(&m, "candidates", "m", defaultConfig().Search.Candidates, "candidates per node")
	cmd.Flags().IntVar(&show, "show", defaultShowCandidates, "number of nodes to print")

	return cmd
}

func runCandidates(ctx context.Context, w io.Writer, cfg config, show int) error {
	in, err := buildInstance(ctx, cfg.Instance)
	if err != nil {
		return err
	}
	set, err := buildCandidates(ctx, in, cfg.Search.Candidates)
	if err != nil {
		return err
	}

	mutual, err := mutualEdges(set)
	if err != nil {
		return err
	}

	printCandidates(w, candidateRows(set, show), show)
	fmt.Fprintf(w, "%d nodes, %d candidates each, %d mutual candidate edges\n", set.N(), set.M(), mutual)

	return nil
}

// candidateRows reads the first limit candidate lists of set.
func candidateRows(set candidate.Set, limit int) [][]int {
	limit = min(limit, set.N())
	rows := make([][]int, limit)
	for v := 1; v <= limit; v++ {
		row := make([]int, set.M())
		for id := 1; id <= set.M(); id++ {
			row[id-1] = set.Candidate(v, id)
		}
		rows[v-1] = row
	}
	return rows
}

// mutualEdges counts the edges {v,u} with u in the list of v and v in the
// list of u. Every listing increments a symmetric edge counter, so mutual
// edges end at 2.
func mutualEdges(set candidate.Set) (int, error) {
	counts, err := candidate.NewEdgeNumber(candidate.EdgeNumberConfig{
		N:         set.N(),
		Symmetric: true,
		Min:       0,
		Max:       2,
	}, set, nil)
	if err != nil {
		return 0, err
	}

	var v, id, u, mutual int
	for v = 1; v <= set.N(); v++ {
		for id = 1; id <= set.M(); id++ {
			counts.Inc(v, set.Candidate(v, id))
		}
	}
	for v = 1; v <= set.N(); v++ {
		for id = 1; id <= set.M(); id++ {
			u = set.Candidate(v, id)
			if v < u && counts.GetInt(v, u) == 2 {
				mutual++
			}
		}
	}

	return mutual, nil
}
