package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/marcus/exnote/internal/highlight"
)

var showPlain bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note's content",
	Long:  `Print a note's content. Output is syntax highlighted when stdout is a terminal unless --plain is set.`,
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

		content := note.Content
		if !showPlain && isatty.IsTerminal(os.Stdout.Fd()) {
			content = highlight.New(e.cfg.Editor.SyntaxTheme).Render(content, note.Language)
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		if content != "" && content[len(content)-1] != '\n' {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "never highlight output")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
