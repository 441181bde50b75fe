package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/marcus/exnote/internal/notes"
)

var (
	listSearch string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered by title",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		filtered := notes.Filter(e.store.Notes(), listSearch)
		out := cmd.OutOrStdout()

		if listJSON {
			data, err := sonic.ConfigStd.MarshalIndent(filtered, "", "  ")
			if err != nil {
				return fmt.Errorf("encode notes: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, n := range filtered {
			fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, n.Title, n.Language)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "only notes whose title contains this text")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
}
