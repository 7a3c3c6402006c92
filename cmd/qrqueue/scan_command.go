package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qrqueue/internal/intake"
	"qrqueue/internal/queue"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var idFromCode bool

	cmd := &cobra.Command{
		Use:   "scan IMAGE...",
		Short: "Decode QR codes from images and queue them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *queue.Store) error {
				svc := intake.New(store,
					intake.WithLogger(ctx.ensureLogger()),
					intake.WithConcurrency(cfg.Scanner.Concurrency),
					intake.WithIDFromCode(idFromCode || cfg.Scanner.IDFromCode),
				)
				outcomes, err := svc.ScanFiles(cmd.Context(), args)

				out := cmd.OutOrStdout()
				failed := 0
				for _, o := range outcomes {
					switch {
					case o.Item != nil:
						fmt.Fprintf(out, "Queued %s from %s (%s)\n", o.Item.IDString(), o.Path, cellValue(o.Item["code"]))
					case o.Err != nil:
						failed++
						fmt.Fprintf(out, "Skipped %s: %v\n", o.Path, o.Err)
					}
				}
				if err != nil {
					return err
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d images had no readable code", failed, len(args))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&idFromCode, "id-from-code", false, "Use the decoded text as the item id")
	return cmd
}
