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
package day

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/state"
	dayui "github.com/Paintersrp/dn/internal/tui/day"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

// Run starts the day screen. Tests replace it.
var Run = dayui.Run

func NewCmdDay(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "day [date]",
		Aliases: []string{"d"},
		Short:   "Open the day screen.",
		Long: heredoc.Doc(`
			Opens the week strip and the notes of a day.

			The date may be today, yesterday, tomorrow, an offset such as +3 or -1,
			an ISO date or most written dates. Without a date the screen opens on
			today.

			Examples:
			  dn day
			  dn day tomorrow
			  dn day -- -7
			  dn day 2024-06-05
			  dn day "june 5"
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}

			date, err := cmdpkg.ResolveDay(s, arg)
			if err != nil {
				return err
			}
			return Open(s, date)
		},
	}

	return cmd
}

// Open starts the day screen on date.
func Open(s *state.State, date time.Time) error {
	s.Logger.Debug("opening day screen", "date", date.Format("2006-01-02"))
	return Run(s, date)
}
