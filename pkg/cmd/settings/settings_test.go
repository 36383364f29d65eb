package settings

import (
	"testing"

	"github.com/Paintersrp/dn/internal/state"
	cmdpkg "github.com/Paintersrp/dn/pkg/cmd"
)

func TestSettingsIsConfigOnly(t *testing.T) {
	cmd := NewCmdSettings(&state.State{})
	if cmdpkg.NeedsStore(cmd) {
		t.Fatalf("settings must not open the store")
	}
	if cmd.Args != nil {
		if err := cmd.Args(cmd, []string{}); err != nil {
			t.Fatalf("settings takes no arguments: %v", err)
		}
	}
}
