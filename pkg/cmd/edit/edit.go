package edit

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/editor"
	"github.com/Paintersrp/dn/internal/state"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

// Launch runs the editor. Tests replace it.
var Launch = editor.Run

func NewCmdEdit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [id]",
		Aliases: []string{"e", "open"},
		Short:   "Edit a note in the configured editor.",
		Long: heredoc.Doc(`
			Opens the content of a note in the configured editor, or $VISUAL or
			$EDITOR when none is configured, and saves it once the editor exits.

			Examples:
			  dn edit 3f9a2c1b
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}

			cfg := s.Config
			after, err := editor.EditFile(n.Content, func(path string) error {
				l, err := editor.ForPath(editor.Resolve(cfg.Editor), cfg.EditorArgs, path)
				if err != nil {
					return err
				}
				s.Logger.Debug("opening editor", "note", n.ID, "cmd", l.Cmd.Args)
				return Launch(l)
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if strings.TrimSpace(after) == strings.TrimSpace(n.Content) {
				fmt.Fprintln(out, "No changes.")
				return nil
			}
			if err := s.Store.UpdateContent(cmdpkg.Context(cmd), n.ID, after); err != nil {
				return err
			}

			fmt.Fprintf(out, "Saved %s\n", cmdpkg.ShortID(n.ID))
			return nil
		},
	}

	return cmd
}
