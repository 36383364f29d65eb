package show

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/state"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

func NewCmdShow(s *state.State) *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:     "show [id]",
		Aliases: []string{"cat"},
		Short:   "Print a note.",
		Long: heredoc.Doc(`
			Prints a note rendered as markdown with the configured theme. The id
			may be shortened to any unique prefix, as printed by dn list.

			Examples:
			  dn show 3f9a2c1b
			  dn show 3f9a --raw
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprintln(out, n.Content)
				return nil
			}

			rendered, err := content.Render(n.Content, width, s.Config.Theme)
			if err != nil {
				return fmt.Errorf("failed to render note: %w", err)
			}
			fmt.Fprintln(out, cmdpkg.FormatNote(n, width))
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Print the markdown source.")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap width of the rendered note.")

	return cmd
}
