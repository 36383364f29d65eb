package cmd

import "github.com/spf13/cobra"

// configOnly marks commands that only touch the config file. The root
// command skips opening the store for them.
const configOnly = "dn/config-only"

// ConfigOnly annotates cmd as not needing the store.
func ConfigOnly(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[configOnly] = "true"
	return cmd
}

// NeedsStore reports whether cmd reads or writes notes. Help and shell
// completion never do.
func NeedsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[configOnly] == "true" {
			return false
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
