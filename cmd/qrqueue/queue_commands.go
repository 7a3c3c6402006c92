package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"qrqueue/internal/queue"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var idFlag string
	var numericID bool
	var fields []string
	var rawJSON string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Queue an item, replacing any item with the same id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := buildItem(idFlag, numericID, fields, rawJSON)
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *queue.Store) error {
				if err := store.Add(cmd.Context(), item); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queued %s\n", item.IDString())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "Item id (generated when omitted)")
	cmd.Flags().BoolVar(&numericID, "numeric-id", false, "Store --id as a number instead of a string")
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "Payload field as key=value (repeatable)")
	cmd.Flags().StringVar(&rawJSON, "json", "", "Payload as a JSON object; --id and --field values override it")
	return cmd
}

// buildItem merges the JSON payload, individual fields, and the id flag.
func buildItem(idFlag string, numericID bool, fields []string, rawJSON string) (queue.Item, error) {
	item := queue.Item{}
	if strings.TrimSpace(rawJSON) != "" {
		obj, err := decodeJSONObject(rawJSON)
		if err != nil {
			return nil, err
		}
		for k, v := range obj {
			item[k] = v
		}
	}
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --field %q (expected key=value)", field)
		}
		item[key] = value
	}

	switch {
	case idFlag != "" && numericID:
		num := json.Number(strings.TrimSpace(idFlag))
		if _, err := num.Float64(); err != nil {
			return nil, fmt.Errorf("invalid numeric id %q", idFlag)
		}
		item[queue.KeyPath] = num
	case idFlag != "":
		item[queue.KeyPath] = idFlag
	case numericID:
		return nil, errors.New("--numeric-id requires --id")
	}
	if _, ok := item.ID(); !ok {
		item[queue.KeyPath] = uuid.NewString()
	}
	return item, nil
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queued items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *queue.Store) error {
				items, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, items)
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
					return nil
				}
				table := renderTable(
					[]string{"ID", "Code", "Scanned", "Other Fields"},
					buildItemRows(items),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprint(cmd.OutOrStdout(), table)
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func buildItemRows(items []queue.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		var extra []string
		for key := range item {
			switch key {
			case queue.KeyPath, "code", "scanned_at":
				continue
			}
			extra = append(extra, key)
		}
		sort.Strings(extra)
		rows = append(rows, []string{
			item.IDString(),
			cellValue(item["code"]),
			cellValue(item["scanned_at"]),
			strings.Join(extra, ", "),
		})
	}
	return rows
}

func cellValue(v any) string {
	if v == nil {
		return "-"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var numeric bool

	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Remove queued items by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]any, 0, len(args))
			for _, arg := range args {
				if !numeric {
					keys = append(keys, arg)
					continue
				}
				num := json.Number(strings.TrimSpace(arg))
				if _, err := num.Float64(); err != nil {
					return fmt.Errorf("invalid numeric id %q", arg)
				}
				keys = append(keys, num)
			}
			return ctx.withStore(func(store *queue.Store) error {
				for _, key := range keys {
					if err := store.Delete(cmd.Context(), key); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %v\n", key)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&numeric, "numeric", false, "Treat ids as numbers")
	return cmd
}
