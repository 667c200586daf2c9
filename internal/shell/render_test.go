package shell

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/s22625/agentcli/internal/model"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	st := DefaultStyles()
	out := renderTable(st, "", []string{"Name", "Value"}, [][]string{
		{"a", "1"},
		{"longer-name", "2"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[2], "longer-name") {
		t.Errorf("row = %q", lines[2])
	}
	// Both data rows pad the first column to the same width.
	if strings.Index(lines[1], "1") != strings.Index(lines[2], "2") {
		t.Errorf("misaligned columns:\n%s", out)
	}
}

func TestRenderJobsTable(t *testing.T) {
	st := DefaultStyles()
	jobs := []model.Job{
		{ID: json.Number("7"), Timestamp: "2026-08-30T10:00:00Z", Method: "swe_agent",
			Status: model.StatusCompleted, Prompt: "fix the login flow", Org: "acme", Repo: "api"},
	}

	out := RenderJobs(st, jobs)
	for _, want := range []string{"7", "swe_agent", "completed", "fix the login flow", "acme", "api"} {
		if !strings.Contains(out, want) {
			t.Errorf("jobs table missing %q:\n%s", want, out)
		}
	}

	if got := RenderJobs(st, nil); !strings.Contains(got, "No jobs found") {
		t.Errorf("empty listing = %q", got)
	}
}

func TestRenderJSON(t *testing.T) {
	got := renderJSON([]byte(`{"a":1,"b":{"c":2}}`))
	if !strings.Contains(got, "\n  \"a\": 1") {
		t.Errorf("not indented:\n%s", got)
	}

	// Invalid JSON falls back to raw text.
	if got := renderJSON([]byte("plain text")); got != "plain text" {
		t.Errorf("fallback = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"much too long for this", 8, "much to…"},
		{"ab", 1, "."},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
