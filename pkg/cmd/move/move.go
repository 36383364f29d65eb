package move

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/state"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
	"github.com/Paintersrp/dn/pkg/shared/flags"
)

func NewCmdMove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move [id] [date]",
		Aliases: []string{"mv", "reschedule"},
		Short:   "Move a note to another day or time.",
		Long: heredoc.Doc(`
			Moves a note to another day. The note keeps its time of day unless
			--at is given, and a note with an end keeps its duration.

			Examples:
			  dn move 3f9a2c1b tomorrow
			  dn move 3f9a 2024-07-01 --at 14:00
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}
			day, err := cmdpkg.ResolveDay(s, args[1])
			if err != nil {
				return err
			}
			start, err := flags.HandleAt(cmd, day, n.Start)
			if err != nil {
				return err
			}

			var end *time.Time
			if n.End != nil {
				e := start.Add(n.End.Sub(n.Start))
				end = &e
			}
			if err := s.Store.Reschedule(cmdpkg.Context(cmd), n.ID, start, end); err != nil {
				return err
			}

			n.Start, n.End = start, end
			s.Logger.Info("note moved", "id", n.ID, "start", start)
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s\n", cmdpkg.FormatNote(n, 60))
			return nil
		},
	}

	flags.AddAt(cmd)

	return cmd
}
