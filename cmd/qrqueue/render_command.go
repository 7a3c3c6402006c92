package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qrqueue/internal/config"
	"qrqueue/internal/qrcode"
	"qrqueue/internal/textutil"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var output string
	var size int

	cmd := &cobra.Command{
		Use:   "render TEXT",
		Short: "Write a QR code label as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(output)
			if target == "" {
				target = textutil.LabelFileName(args[0])
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if !cmd.Flags().Changed("size") {
				size = cfg.Render.Size
			}
			if err := config.CheckRenderSize(size); err != nil {
				return fmt.Errorf("--size %w", err)
			}
			if err := qrcode.WriteFile(target, args[0], size); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dpx QR code to %s\n", size, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination PNG file (defaults to qr-<text>.png)")
	cmd.Flags().IntVar(&size, "size", 0, "Image edge length in pixels (defaults to render.size)")
	return cmd
}
