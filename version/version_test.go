package version

import (
	"strings"
	"testing"
	"time"
)

func stamp(t *testing.T, version, commit, branch, built string) {
	t.Helper()
	origVersion, origCommit, origBranch, origBuilt := Version, GitCommit, GitBranch, BuildTime
	t.Cleanup(func() {
		Version, GitCommit, GitBranch, BuildTime = origVersion, origCommit, origBranch, origBuilt
	})
	Version, GitCommit, GitBranch, BuildTime = version, commit, branch, built
}

func TestGetStamped(t *testing.T) {
	stamp(t, "1.2.0", "abc1234def", "main", "2026-03-01T10:30:00Z")

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("got %q, want %q", info.Version, "1.2.0")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("got commit %q, want %q", info.GitCommit, "abc1234")
	}
	if info.BuildDate.Year() != 2026 {
		t.Errorf("got build year %d, want 2026", info.BuildDate.Year())
	}
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"dev", Info{Version: "dev"}, false},
		{"stamped", Info{Version: "1.0.0"}, true},
		{"dirty tree", Info{Version: "1.0.0", Dirty: true}, false},
		{"dirty version", Info{Version: "1.0.0-dirty"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.IsRelease(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "dev"}, "dev"},
		{"with commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", Dirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Short(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	built := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	s := Info{Version: "1.0.0", GitCommit: "abc1234", GitBranch: "main", BuildDate: built}.String()
	if want := "1.0.0-abc1234 (built 2026-01-15T10:30:00Z)"; s != want {
		t.Errorf("got %q, want %q", s, want)
	}

	s = Info{Version: "1.0.0", GitBranch: "feature/tee-blocks"}.String()
	if !strings.Contains(s, "feature/tee-blocks") {
		t.Errorf("got %q, want feature branch", s)
	}
}

func TestFields(t *testing.T) {
	f := Info{Version: "1.0.0", GitCommit: "abc1234"}.Fields()
	if f["version"] != "1.0.0" || f["git_commit"] != "abc1234" {
		t.Errorf("got %v", f)
	}
}
