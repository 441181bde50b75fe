package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/exnote/internal/notes"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		note, ok := e.store.Get(id)
		if !ok {
			return fmt.Errorf("note %d not found", id)
		}

		confirm := notes.NewDeleteConfirm(e.store)
		confirm.Request(id)

		if !deleteYes {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete %q? [y/N] ", note.Title)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				confirm.Cancel()
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}

		if err := confirm.Confirm(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Note Deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
