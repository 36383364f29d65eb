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
package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/dn/internal/constants"
	"github.com/Paintersrp/dn/internal/state"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
	"github.com/Paintersrp/dn/pkg/cmd/add"
	"github.com/Paintersrp/dn/pkg/cmd/changeEditor"
	"github.com/Paintersrp/dn/pkg/cmd/changeWeekStart"
	"github.com/Paintersrp/dn/pkg/cmd/day"
	"github.com/Paintersrp/dn/pkg/cmd/edit"
	"github.com/Paintersrp/dn/pkg/cmd/initialize"
	"github.com/Paintersrp/dn/pkg/cmd/list"
	"github.com/Paintersrp/dn/pkg/cmd/move"
	"github.com/Paintersrp/dn/pkg/cmd/remove"
	"github.com/Paintersrp/dn/pkg/cmd/search"
	"github.com/Paintersrp/dn/pkg/cmd/settings"
	"github.com/Paintersrp/dn/pkg/cmd/show"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "dn [date]",
		Short:   "Day notes: a week strip and a list of notes per day.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			dn keeps short markdown notes on a calendar. Without a command it opens
			the day screen: a week strip on top and the notes of the selected day
			below, both scrolling endlessly.

			  dn                  open today
			  dn tomorrow         open tomorrow
			  dn add "call mum"   add a note now
			  dn list             print today's notes
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmdpkg.NeedsStore(cmd) {
				return nil
			}
			return s.Open()
		},
		RunE: day.NewCmdDay(s).RunE,
	}

	cmd.PersistentFlags().String("data-dir", "", "Directory holding the notes database.")
	cmd.PersistentFlags().String("week-start", "", "First day of the week: monday or sunday.")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file.")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error.")
	viper.BindPFlag("data_dir", cmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("week_start", cmd.PersistentFlags().Lookup("week-start"))
	viper.BindPFlag("log_file", cmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		initialize.NewCmdInit(s),
		settings.NewCmdSettings(s),
		changeEditor.NewCmdChangeEditor(s),
		changeWeekStart.NewCmdChangeWeekStart(s),
		day.NewCmdDay(s),
		add.NewCmdAdd(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		edit.NewCmdEdit(s),
		move.NewCmdMove(s),
		remove.NewCmdRemove(s),
		search.NewCmdSearch(s),
	)

	return cmd, nil
}
