package add

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/store"
	"github.com/Paintersrp/dn/internal/tui/textarea"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
	"github.com/Paintersrp/dn/pkg/shared/arg"
	"github.com/Paintersrp/dn/pkg/shared/flags"
)

// Compose writes the content interactively when none was given. Tests
// replace it.
var Compose = textarea.Run

// IsTerminal reports whether in is an interactive terminal.
var IsTerminal = func(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func NewCmdAdd(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [content]",
		Aliases: []string{"a", "new"},
		Short:   "Add a note to a day.",
		Long: heredoc.Doc(`
			Adds a note at the current time of today, or at the day and time given
			by the flags. Without content the note is read from standard input when
			it is piped, otherwise a small editor opens to write it.

			Examples:
			  dn add "call the dentist"
			  dn add standup notes --at 09:30 --until 09:45
			  dn add --date tomorrow --paste
			  echo "from a script" | dn add
			  dn add
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := s.Now()

			day, err := flags.HandleDate(cmd, now)
			if err != nil {
				return err
			}
			start, err := flags.HandleAt(cmd, day, now)
			if err != nil {
				return err
			}
			end, err := flags.HandleUntil(cmd, start)
			if err != nil {
				return err
			}

			content, err := flags.WithPaste(cmd, arg.HandleContent(args), nil)
			if err != nil {
				return err
			}
			if content == "" {
				var ok bool
				content, ok, err = readContent(cmd, "New note for "+dates.FormatDay(day))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing added.")
					return nil
				}
			}

			n, err := s.Store.Create(cmdpkg.Context(cmd), store.NewNote{
				Content: content,
				Start:   start,
				End:     end,
			})
			if err != nil {
				return err
			}

			s.Logger.Info("note added", "id", n.ID, "start", n.Start)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", cmdpkg.FormatNote(n, 60))
			return nil
		},
	}

	flags.AddDate(cmd)
	flags.AddAt(cmd)
	flags.AddUntil(cmd)
	flags.AddPaste(cmd)

	return cmd
}

// readContent composes the note on a terminal and reads it from standard
// input otherwise.
func readContent(cmd *cobra.Command, header string) (string, bool, error) {
	in := cmd.InOrStdin()
	if IsTerminal(in) {
		return Compose(header, "")
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("failed to read note from stdin: %w", err)
	}
	content := strings.TrimSpace(string(b))
	return content, content != "", nil
}
