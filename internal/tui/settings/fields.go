package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Paintersrp/dn/internal/config"
	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/logging"
)

// field is one editable config value. Fields with choices are edited with
// a selection prompt, the rest with a text input.
type field struct {
	title   string
	help    string
	choices []string
	get     func(*config.Config) string
	set     func(*config.Config, string) error
}

var fields = []field{
	{
		title: "Data Directory",
		help:  "Where the notes database lives.",
		get:   func(c *config.Config) string { return c.DataDir },
		set: func(c *config.Config, v string) error {
			if v == "" {
				return fmt.Errorf("data directory cannot be empty")
			}
			c.DataDir = v
			return nil
		},
	},
	{
		title:   "Week Start",
		help:    "First column of the week strip.",
		choices: []string{"monday", "sunday"},
		get:     func(c *config.Config) string { return c.WeekStart },
		set:     func(c *config.Config, v string) error { c.WeekStart = v; return nil },
	},
	{
		title: "Snap Count",
		help:  "Slides kept mounted on each side of a carousel.",
		get:   func(c *config.Config) string { return strconv.Itoa(c.SnapCount) },
		set: func(c *config.Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("snap count must be a number")
			}
			c.SnapCount = n
			return nil
		},
	},
	{
		title:   "Editor",
		help:    "Editor used to write notes.",
		choices: config.EditorNames(),
		get:     func(c *config.Config) string { return c.Editor },
		set:     func(c *config.Config, v string) error { c.Editor = v; return nil },
	},
	{
		title: "Editor Arguments",
		help:  "Extra arguments passed to the editor.",
		get:   func(c *config.Config) string { return c.EditorArgs },
		set:   func(c *config.Config, v string) error { c.EditorArgs = v; return nil },
	},
	{
		title:   "Theme",
		help:    "Markdown style for note previews.",
		choices: content.Styles,
		get:     func(c *config.Config) string { return c.Theme },
		set:     func(c *config.Config, v string) error { c.Theme = v; return nil },
	},
	{
		title: "Log File",
		help:  "Log destination. Empty disables logging.",
		get:   func(c *config.Config) string { return c.LogFile },
		set:   func(c *config.Config, v string) error { c.LogFile = v; return nil },
	},
	{
		title:   "Log Level",
		choices: logging.Levels,
		get:     func(c *config.Config) string { return c.LogLevel },
		set:     func(c *config.Config, v string) error { c.LogLevel = v; return nil },
	},
}

// apply sets f on a copy of cfg and saves it. cfg is only changed when the
// result validates and saves.
func apply(cfg *config.Config, f field, value string) error {
	next := *cfg
	if err := f.set(&next, strings.TrimSpace(value)); err != nil {
		return err
	}
	if err := next.Save(); err != nil {
		return err
	}
	*cfg = next
	return nil
}
