package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qrqueue/internal/preflight"
	"qrqueue/internal/queue"
)

type healthReport struct {
	Checks []preflight.Result   `json:"checks"`
	Store  queue.DatabaseHealth `json:"store"`
	State  string               `json:"state"`
}

func newHealthCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check directories and the queue database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *queue.Store) error {
				results := preflight.RunAll(cmd.Context(), cfg, nil)
				health, healthErr := store.CheckHealth(cmd.Context())
				if healthErr != nil && health.Error == "" {
					health.Error = healthErr.Error()
				}
				results = append(results, preflight.StoreResult(health, healthErr))

				if jsonOutput {
					report := healthReport{Checks: results, Store: health, State: store.State().String()}
					if err := writeJSON(cmd, report); err != nil {
						return err
					}
				} else {
					out := cmd.OutOrStdout()
					colorize := shouldColorize(out)
					for _, line := range renderSectionHeader("Queue Health", colorize) {
						fmt.Fprintln(out, line)
					}
					for _, r := range results {
						fmt.Fprintln(out, renderStatusLine(r.Name, resultKind(r), r.Detail, colorize))
					}
					fmt.Fprintln(out, renderStatusLine("Collection", statusInfo, store.Collection(), colorize))
					fmt.Fprintln(out, renderStatusLine("Store opened", statusInfo, yesNo(store.State() == queue.StateReady), colorize))
				}

				if preflight.Failed(results) {
					return errors.New("health check failed")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
