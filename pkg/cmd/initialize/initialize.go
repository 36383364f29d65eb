/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package initialize

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/tui/initialize"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

// Prompt runs the setup form. Tests replace it.
var Prompt = initialize.Run

func NewCmdInit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"i", "init"},
		Short:   "Initialize dn",
		Long: heredoc.Doc(`
			This command will walk you through setting up dn: where notes are
			stored, which day starts the week and which editor opens notes.
		`),
		Example: "dn init",
		RunE: func(cmd *cobra.Command, args []string) error {
			done, err := Prompt(s.Config)
			if err != nil {
				return err
			}
			if !done {
				fmt.Fprintln(cmd.OutOrStdout(), "Initialization cancelled.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialization complete! Config written to %s\n", s.Config.GetConfigPath())
			return nil
		},
	}

	return cmdpkg.ConfigOnly(cmd)
}
