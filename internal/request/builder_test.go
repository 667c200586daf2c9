package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/s22625/agentcli/internal/config"
	"github.com/s22625/agentcli/internal/model"
)

func testSettings() config.Settings {
	return config.Settings{
		Method:       "swe_agent",
		Batch:        2,
		Model:        "gpt-4o",
		Org:          "acme",
		Repo:         "api",
		SourceBranch: "main",
		TargetBranch: "main",
		BranchPrefix: "agent_router",
	}
}

func TestBuildSynthesizesAgent(t *testing.T) {
	req, err := Build("Fix bug #42", testSettings(), nil, "")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if len(req.Agents) != 1 {
		t.Fatalf("got %d agents, want exactly 1 synthesized", len(req.Agents))
	}
	a := req.Agents[0]
	if a.Method != "swe_agent" || a.Batch != 2 || a.Model != "gpt-4o" {
		t.Errorf("synthesized agent %+v does not match settings", a)
	}
	if req.Prompt != "Fix bug #42" {
		t.Errorf("Prompt = %q", req.Prompt)
	}
	if req.Org != "acme" || req.Repo != "api" {
		t.Errorf("org/repo = %q/%q", req.Org, req.Repo)
	}
}

func TestBuildUsesExplicitAgents(t *testing.T) {
	agents := []model.AgentDetail{
		{Method: "swe_agent", Batch: 4, Model: "gpt-4o"},
		{Method: "code_agent", Batch: 1, Model: "gpt-4o-mini", LLMBaseURL: "http://llm:8000"},
	}

	req, err := Build("Refactor the parser", testSettings(), agents, "tok")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(req.Agents) != 2 {
		t.Fatalf("got %d agents, want the 2 explicit entries", len(req.Agents))
	}
	if req.Agents[1].LLMBaseURL != "http://llm:8000" {
		t.Errorf("base URL override dropped: %+v", req.Agents[1])
	}
	if req.GHToken != "tok" {
		t.Errorf("GHToken = %q, want tok", req.GHToken)
	}
}

func TestBuildRejectsEmptyPrompt(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t  \n"} {
		_, err := Build(prompt, testSettings(), nil, "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Build(%q) error = %v, want ValidationError", prompt, err)
		}
	}
}

func TestBuildRejectsMalformedAgent(t *testing.T) {
	tests := []struct {
		name  string
		agent model.AgentDetail
		field string
	}{
		{"missing method", model.AgentDetail{Batch: 1, Model: "gpt-4"}, "agents[0].method"},
		{"zero batch", model.AgentDetail{Method: "swe_agent", Model: "gpt-4"}, "agents[0].batch"},
		{"negative batch", model.AgentDetail{Method: "swe_agent", Batch: -1, Model: "gpt-4"}, "agents[0].batch"},
		{"missing model", model.AgentDetail{Method: "swe_agent", Batch: 1}, "agents[0].model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build("do something", testSettings(), []model.AgentDetail{tt.agent}, "")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestBuildTrimsPrompt(t *testing.T) {
	req, err := Build("  Fix the flaky test  \n", testSettings(), nil, "")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if req.Prompt != "Fix the flaky test" {
		t.Errorf("Prompt = %q, want trimmed", req.Prompt)
	}
}

func TestNeedsExpansion(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   bool
	}{
		{"short prompt", "fix it", true},
		{"short with ellipsis", "fix the login flow...", false},
		{"long prompt", strings.Repeat("describe the change in detail ", 5), false},
		{"exactly threshold", strings.Repeat("a", 50), false},
		{"one below threshold", strings.Repeat("a", 49), true},
		{"short after trim", "   fix it   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsExpansion(tt.prompt); got != tt.want {
				t.Errorf("NeedsExpansion(%q) = %v, want %v", tt.prompt, got, tt.want)
			}
		})
	}
}
