package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if info == "" {
		t.Error("Info() returned empty string")
	}
	if !strings.Contains(info, "spotscope") {
		t.Errorf("Info() = %q, want program name included", info)
	}
}

func TestInfo_Stable(t *testing.T) {
	if Info() != Info() {
		t.Error("Info() should be stable across calls")
	}
}
