package search

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/fzf"
	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/store"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
	"github.com/Paintersrp/dn/pkg/cmd/day"
	"github.com/Paintersrp/dn/pkg/shared/arg"
)

// Find runs the finder. Tests replace it.
var Find = func(f *fzf.FuzzyFinder, query string) (store.Note, error) {
	return f.Run(query)
}

func NewCmdSearch(s *state.State) *cobra.Command {
	var printID bool

	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"find", "f"},
		Short:   "Fuzzy find a note and open its day.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over every note with a rendered preview. The chosen
			note's day opens in the day screen, or with --print its id is printed.

			Examples:
			  dn search
			  dn search dentist
			  dn search standup --print
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := s.Store.All(cmdpkg.Context(cmd))
			if err != nil {
				return err
			}

			finder := fzf.NewFuzzyFinder(notes, "Search notes", s.Config.Theme)
			n, err := Find(finder, arg.HandleContent(args))
			if err != nil {
				if errors.Is(err, fzf.ErrNoSelection) {
					return fzf.HandleError(cmd.ErrOrStderr(), err)
				}
				return err
			}

			if printID {
				fmt.Fprintln(cmd.OutOrStdout(), n.ID)
				return nil
			}
			return day.Open(s, dates.Civil(n.Start))
		},
	}

	cmd.Flags().BoolVarP(&printID, "print", "p", false, "Print the id of the chosen note instead of opening it.")

	return cmd
}
