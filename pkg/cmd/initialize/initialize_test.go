package initialize

import (
	"strings"
	"testing"

	"github.com/Paintersrp/dn/internal/config"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
	"github.com/Paintersrp/dn/pkg/cmd/cmdtest"
)

func TestInitCommand(t *testing.T) {
	s := cmdtest.NewState(t)

	prev := Prompt
	t.Cleanup(func() { Prompt = prev })

	Prompt = func(cfg *config.Config) (bool, error) {
		cfg.WeekStart = "sunday"
		return true, cfg.Save()
	}

	cmd := NewCmdInit(s)
	if cmdpkg.NeedsStore(cmd) {
		t.Fatalf("init must not open the store")
	}

	out, err := cmdtest.Execute(t, cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, s.Config.GetConfigPath()) {
		t.Fatalf("expected the config path in %q", out)
	}

	Prompt = func(*config.Config) (bool, error) { return false, nil }
	out, err = cmdtest.Execute(t, NewCmdInit(s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "cancelled") {
		t.Fatalf("unexpected output %q", out)
	}
}
