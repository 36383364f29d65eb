package remove

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/state"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

func NewCmdRemove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm", "trash"},
		Short:   "Remove a note.",
		Long: heredoc.Doc(`
			Removes a note from its day.
			Provide the id of the note, or a unique prefix of it.

			Example:
			  dn remove 3f9a2c1b
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				_ = cmd.Help()
				return fmt.Errorf("id argument is required")
			}

			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}
			if err := s.Store.Delete(cmdpkg.Context(cmd), n.ID); err != nil {
				return err
			}

			s.Logger.Info("note removed", "id", n.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %q\n", cmdpkg.ShortID(n.ID), content.Title(n.Content, 40))
			return nil
		},
	}

	return cmd
}
