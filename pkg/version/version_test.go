package version

import (
	"runtime"
	"testing"
)

func setBuildVars(t *testing.T, version, commit, buildTime, dirty string) {
	t.Helper()
	origVersion, origCommit, origTime, origDirty := Version, GitCommit, BuildTime, GitDirty
	t.Cleanup(func() {
		Version, GitCommit, BuildTime, GitDirty = origVersion, origCommit, origTime, origDirty
	})
	Version, GitCommit, BuildTime, GitDirty = version, commit, buildTime, dirty
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		commit    string
		buildTime string
		dirty     string
		want      string
	}{
		{
			name:      "clean build",
			version:   "v1.0.0",
			commit:    "abc1234",
			buildTime: "2026-01-01T12:00:00Z",
			dirty:     "false",
			want:      "engage-server v1.0.0 (abc1234 2026-01-01T12:00:00Z)",
		},
		{
			name:      "dirty build",
			version:   "v1.0.0",
			commit:    "abc1234",
			buildTime: "2026-01-01T12:00:00Z",
			dirty:     "true",
			want:      "engage-server v1.0.0 (abc1234-dirty 2026-01-01T12:00:00Z)",
		},
		{
			name:      "dev version",
			version:   "dev",
			commit:    "unknown",
			buildTime: "unknown",
			want:      "engage-server dev (unknown unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildVars(t, tt.version, tt.commit, tt.buildTime, tt.dirty)

			if got := GetVersion("engage-server"); got != tt.want {
				t.Errorf("GetVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	setBuildVars(t, "v1.2.3", "def5678", "2026-03-15T10:00:00Z", "true")

	info := Get()

	if info.Version != "v1.2.3" || info.Commit != "def5678" || info.BuildTime != "2026-03-15T10:00:00Z" {
		t.Errorf("unexpected build info: %+v", info)
	}
	if !info.Dirty {
		t.Error("expected Dirty when GitDirty=true")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}
