package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/internal/requestid"
	"github.com/solverkit/allocsolver/router"
)

// newSolveCmd builds `allocsolver solve`: a one-shot solve from a JSON
// request file (or stdin) to stdout.
func newSolveCmd(logger zerolog.Logger) *cobra.Command {
	var (
		inputPath string
		income    int
		target    int
		step      int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one solve and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqID := requestid.New()
			log := logger.With().Str("request_id", reqID).Logger()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			stateMap, err := readStateInput(inputPath)
			if err != nil {
				return fmt.Errorf("reading state input: %w", err)
			}

			state0, err := alloc.StateFromMap(stateMap)
			if err != nil {
				return fmt.Errorf("parsing state: %w", err)
			}

			floors, err := cfg.AllocFloors()
			if err != nil {
				return fmt.Errorf("parsing floors: %w", err)
			}

			if step <= 0 {
				step = cfg.Step
			}

			log.Info().Int("income", income).Int("target", target).Int("step", step).Msg("starting solve")

			res := router.Solve(state0, income, floors, target, step, cfg.RouterOptions())

			log.Info().Str("method", string(res.Method)).Str("status", string(res.Status)).Msg("solve finished")

			return printResult(cmd, res)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a JSON state file (defaults to stdin)")
	cmd.Flags().IntVar(&income, "income", 0, "monthly income")
	cmd.Flags().IntVar(&target, "target", 0, "savings target (0 disables)")
	cmd.Flags().IntVar(&step, "step", 0, "adjustment step size (0 uses the configured default)")
	cmd.MarkFlagRequired("income")

	return cmd
}

func readStateInput(path string) (map[string]int, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var state map[string]int
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func printResult(cmd *cobra.Command, res router.Result) error {
	out := map[string]interface{}{
		"method": res.Method,
		"status": res.Status,
		"notes":  res.Notes,
		"trace":  res.Trace,
	}
	if res.Status != router.StatusAiRecommendation {
		out["final_state"] = res.FinalState.ToMap()
	} else {
		out["recommendation"] = res.Recommendation
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
