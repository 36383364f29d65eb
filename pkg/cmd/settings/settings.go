package settings

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/tui/settings"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s", "config"},
		Short:   "CLI settings menu",
		Long:    "This command allows you to adjust your settings directly from the CLI tool.",
		Example: "dn settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return settings.Run(s.Config)
		},
	}

	return cmdpkg.ConfigOnly(cmd)
}
