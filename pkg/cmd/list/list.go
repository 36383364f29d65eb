package list

import (
	"fmt"
	"io"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/store"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

const titleWidth = 60

func NewCmdList(s *state.State) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list [date]",
		Aliases: []string{"ls", "l"},
		Short:   "List the notes of a day.",
		Long: heredoc.Doc(`
			Prints the notes of a day in the order the day screen shows them.
			Notes carried over from an earlier day start with ←, notes that go on
			past the day end with →.

			Examples:
			  dn list
			  dn list yesterday
			  dn list --all
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				notes, err := s.Store.All(cmdpkg.Context(cmd))
				if err != nil {
					return err
				}
				if len(notes) == 0 {
					fmt.Fprintln(out, "No notes yet.")
					return nil
				}
				for _, n := range notes {
					fmt.Fprintln(out, cmdpkg.FormatNote(n, titleWidth))
				}
				return nil
			}

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			day, err := cmdpkg.ResolveDay(s, arg)
			if err != nil {
				return err
			}

			notes, err := s.Store.NotesByDay(cmdpkg.Context(cmd), day)
			if err != nil {
				return err
			}
			printDay(out, day, notes)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every note, newest first.")

	return cmd
}

func printDay(w io.Writer, day time.Time, notes []store.DayNote) {
	fmt.Fprintln(w, day.Format("Monday, 2 January 2006"))
	if len(notes) == 0 {
		fmt.Fprintln(w, "  No notes.")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(w, "  %5s %5s  %s  %s\n",
			n.StartLabel(),
			n.EndLabel(),
			cmdpkg.ShortID(n.ID),
			content.Title(n.Content, titleWidth),
		)
	}
}
