package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus/exnote/internal/notes"
)

var (
	newTitle    string
	newLanguage string
	newContent  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note and print its id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		note, err := e.store.Create()
		if err != nil {
			return err
		}
		if newTitle != "" {
			if err := e.store.Rename(note.ID, newTitle); err != nil {
				return err
			}
		}
		if newLanguage != "" {
			lang := notes.Language(newLanguage)
			if !lang.Known() {
				e.logger.Warn("unknown language stored as-is", zap.String("language", newLanguage))
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown language %q; content will not be highlighted\n", newLanguage)
			}
			if err := e.store.Update(note.ID, notes.FieldLanguage, newLanguage); err != nil {
				return err
			}
		}
		if newContent != "" {
			if err := e.store.Update(note.ID, notes.FieldContent, newContent); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "note title")
	newCmd.Flags().StringVarP(&newLanguage, "language", "l", "", "note language (plaintext, javascript, python, html, css, json)")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "note content")
}
