package flags

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func AddPaste(cmd *cobra.Command) {
	cmd.Flags().
		Bool("paste", false, "Append the clipboard contents to the note content.")
}

func HandlePaste(cmd *cobra.Command) (bool, error) {
	return cmd.Flags().GetBool("paste")
}

// WithPaste appends the clipboard to content when --paste is set.
func WithPaste(cmd *cobra.Command, content string, read func() (string, error)) (string, error) {
	paste, err := HandlePaste(cmd)
	if err != nil || !paste {
		return content, err
	}

	if read == nil {
		read = clipboard.ReadAll
	}
	clip, err := read()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	clip = strings.TrimSpace(clip)

	switch {
	case clip == "":
		return content, nil
	case content == "":
		return clip, nil
	default:
		return content + "\n\n" + clip, nil
	}
}
