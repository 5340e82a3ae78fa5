package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// UpdateGoldenEnv rewrites golden files instead of comparing when set.
const UpdateGoldenEnv = "TASK_TRACKER_UPDATE_GOLDEN"

// Golden compares command output with testdata/<name>.golden and reports
// the first line that differs.
func Golden(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	if os.Getenv(UpdateGoldenEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("update %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v (set %s=1 to create it)", path, err, UpdateGoldenEnv)
	}
	if line, w, g, ok := firstDiff(string(want), got); ok {
		t.Errorf("%s differs at line %d\nwant: %q\ngot:  %q", path, line, w, g)
	}
}

// firstDiff returns the 1-based line where want and got first differ.
// A missing line is reported as "".
func firstDiff(want, got string) (line int, w, g string, differ bool) {
	if want == got {
		return 0, "", "", false
	}
	wl := strings.Split(want, "\n")
	gl := strings.Split(got, "\n")
	for i := 0; i < len(wl) || i < len(gl); i++ {
		if i < len(wl) {
			w = wl[i]
		} else {
			w = ""
		}
		if i < len(gl) {
			g = gl[i]
		} else {
			g = ""
		}
		if i >= len(wl) || i >= len(gl) || w != g {
			return i + 1, w, g, true
		}
	}
	return 0, "", "", false
}
