package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"qrqueue/internal/logging"
	"qrqueue/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var itemID string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent qrqueue log output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.LogPath()
			out := cmd.OutOrStdout()
			match := itemFilter(itemID)

			recent, offset, err := logs.Last(path, lines)
			if err != nil {
				return err
			}
			for _, line := range recent {
				if match(line) {
					fmt.Fprintln(out, line)
				}
			}
			if !follow {
				return nil
			}
			return logs.Follow(cmd.Context(), path, offset, 250*time.Millisecond, func(line string) {
				if match(line) {
					fmt.Fprintln(out, line)
				}
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until interrupted")
	cmd.Flags().StringVar(&itemID, "item", "", "Only show lines for this item id")
	return cmd
}

// itemFilter matches console (item_id=x) and JSON ("item_id":"x") lines.
func itemFilter(id string) func(string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return func(string) bool { return true }
	}
	console := logging.FieldItemID + "=" + id
	quoted := logging.FieldItemID + "=" + strconv.Quote(id)
	jsonField := strconv.Quote(logging.FieldItemID) + ":" + strconv.Quote(id)
	return func(line string) bool {
		return strings.Contains(line, console+" ") || strings.HasSuffix(line, console) ||
			strings.Contains(line, quoted) || strings.Contains(line, jsonField)
	}
}
