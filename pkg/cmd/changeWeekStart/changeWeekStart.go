package changeWeekStart

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/state"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

func NewCmdChangeWeekStart(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "week-start [monday|sunday]",
		Short:     "Change the first day of the week.",
		Long:      heredoc.Doc(`Changes the first column of the week strip.`),
		Example:   "dn week-start sunday",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"monday", "sunday"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Config.ChangeWeekStart(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Weeks now start on %s\n", s.Config.FirstWeekday())
			return nil
		},
	}

	return cmdpkg.ConfigOnly(cmd)
}
