package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTestConfig lays down a minimal valid YAML config under base. The extra
// block supplies at least one backend section.
func writeTestConfig(t *testing.T, base, extra string) string {
	t.Helper()
	mediaRoot := filepath.Join(base, "media")
	if err := os.MkdirAll(mediaRoot, 0o755); err != nil {
		t.Fatalf("mkdir media root: %v", err)
	}
	content := fmt.Sprintf(`cleanup:
  days_threshold: 30
  media_root: %q
  delete_empty_dirs: false
logging:
  dir: %q
  level: error
%s`, mediaRoot, filepath.Join(base, "logs"), extra)

	path := filepath.Join(base, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
