package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/dn/internal/carousel"
	"github.com/Paintersrp/dn/internal/constants"
	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/logging"
)

type Config struct {
	DataDir    string `yaml:"data_dir"    json:"data_dir"`
	WeekStart  string `yaml:"week_start"  json:"week_start"`
	SnapCount  int    `yaml:"snap_count"  json:"snap_count"`
	Editor     string `yaml:"editor"      json:"editor"`
	EditorArgs string `yaml:"editor_args" json:"editor_args"`
	Theme      string `yaml:"theme"       json:"theme"`
	LogFile    string `yaml:"log_file"    json:"log_file"`
	LogLevel   string `yaml:"log_level"   json:"log_level"`

	path string
}

var validEditorNames = []string{"nvim", "vim", "vi", "nano", "hx", "emacs", "code", "vscode", "custom"}

var ValidEditors = func() map[string]bool {
	editors := make(map[string]bool, len(validEditorNames))
	for _, editor := range validEditorNames {
		editors[editor] = true
	}

	return editors
}()

// EditorNames lists the accepted editor values in display order.
func EditorNames() []string {
	return append([]string(nil), validEditorNames...)
}

func ValidateEditor(editor string) error {
	if _, valid := ValidEditors[editor]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid editor: %q. Please choose from %s.",
		editor,
		validEditorList(),
	)
}

func validEditorList() string {
	quoted := make([]string, len(validEditorNames))
	for i, name := range validEditorNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 0 {
		return ""
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// Default returns the configuration used for an empty config file.
func Default() *Config {
	return &Config{
		DataDir:   filepath.Join(xdg.DataHome, constants.AppName),
		WeekStart: "monday",
		SnapCount: carousel.DefaultSnapCount,
		Theme:     content.DefaultStyle,
		LogLevel:  "info",
	}
}

// Load reads the config file below configHome. An empty file yields the
// defaults.
func Load(configHome string) (*Config, error) {
	path := GetConfigPath(configHome)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if len(strings.TrimSpace(string(data))) != 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.path = path
	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

func (cfg *Config) ensureDefaults() {
	def := Default()
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.WeekStart == "" {
		cfg.WeekStart = def.WeekStart
	}
	if cfg.SnapCount == 0 {
		cfg.SnapCount = def.SnapCount
	}
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// Validate checks every field that has a closed set of values.
func (cfg *Config) Validate() error {
	if _, err := dates.ParseWeekday(cfg.WeekStart); err != nil {
		return err
	}
	if cfg.SnapCount < 2 {
		return fmt.Errorf("invalid snap_count %d, want at least 2", cfg.SnapCount)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Editor != "" {
		if err := ValidateEditor(cfg.Editor); err != nil {
			return err
		}
	}
	if !content.ValidStyle(cfg.Theme) {
		return fmt.Errorf("invalid theme %q, want one of %s", cfg.Theme, strings.Join(content.Styles, ", "))
	}
	return nil
}

// syncViper publishes the file values as viper defaults so bound flags can
// override them.
func (cfg *Config) syncViper() {
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", cfg.DataDir)
	viper.SetDefault("week_start", cfg.WeekStart)
	viper.SetDefault("snap_count", cfg.SnapCount)
	viper.SetDefault("editor", cfg.Editor)
	viper.SetDefault("editor_args", cfg.EditorArgs)
	viper.SetDefault("theme", cfg.Theme)
	viper.SetDefault("log_file", cfg.LogFile)
	viper.SetDefault("log_level", cfg.LogLevel)
}

// ApplyOverrides copies flag and DN_ environment values resolved through
// viper back into cfg.
func (cfg *Config) ApplyOverrides() error {
	cfg.DataDir = viper.GetString("data_dir")
	cfg.WeekStart = viper.GetString("week_start")
	cfg.SnapCount = viper.GetInt("snap_count")
	cfg.Editor = viper.GetString("editor")
	cfg.EditorArgs = viper.GetString("editor_args")
	cfg.Theme = viper.GetString("theme")
	cfg.LogFile = viper.GetString("log_file")
	cfg.LogLevel = viper.GetString("log_level")
	cfg.ensureDefaults()
	return cfg.Validate()
}

func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func (cfg *Config) GetConfigPath() string {
	if cfg.path != "" {
		return cfg.path
	}
	return GetConfigPath(xdg.ConfigHome)
}

func (cfg *Config) ChangeEditor(editor string) error {
	if err := ValidateEditor(editor); err != nil {
		return err
	}

	cfg.Editor = editor
	return cfg.Save()
}

func (cfg *Config) ChangeWeekStart(weekStart string) error {
	if _, err := dates.ParseWeekday(weekStart); err != nil {
		return err
	}

	cfg.WeekStart = strings.ToLower(weekStart)
	return cfg.Save()
}

// FirstWeekday is the parsed week_start.
func (cfg *Config) FirstWeekday() time.Weekday {
	day, _ := dates.ParseWeekday(cfg.WeekStart)
	return day
}

func (cfg *Config) DatabasePath() string {
	return filepath.Join(cfg.DataDir, constants.DatabaseFile)
}
