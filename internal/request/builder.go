// Package request builds validated agent requests from operator input and
// resolved settings.
package request

import (
	"fmt"
	"strings"

	"github.com/s22625/agentcli/internal/config"
	"github.com/s22625/agentcli/internal/model"
)

// shortPromptThreshold is the length below which a prompt looks like it may
// have been cut off mid-thought.
const shortPromptThreshold = 50

// ValidationError reports operator input that cannot form a valid request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NeedsExpansion reports whether a prompt looks truncated and the operator
// should be offered multi-line entry before submission. Prompts ending in an
// ellipsis are taken as intentionally short.
func NeedsExpansion(prompt string) bool {
	trimmed := strings.TrimSpace(prompt)
	return len(trimmed) < shortPromptThreshold && !strings.HasSuffix(trimmed, "...")
}

// Build assembles an AgentRequest from a prompt, resolved settings, the
// configured agent list, and an optional credential token. When agents is
// empty, exactly one agent is synthesized from the settings. Build is a pure
// transformation; it performs no I/O.
func Build(prompt string, s config.Settings, agents []model.AgentDetail, ghToken string) (*model.AgentRequest, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return nil, &ValidationError{Field: "prompt", Reason: "must not be empty"}
	}

	if len(agents) == 0 {
		agents = []model.AgentDetail{{
			Method: s.Method,
			Batch:  s.Batch,
			Model:  s.Model,
		}}
	}
	for i, a := range agents {
		if a.Method == "" {
			return nil, &ValidationError{Field: fmt.Sprintf("agents[%d].method", i), Reason: "must not be empty"}
		}
		if a.Batch < 1 {
			return nil, &ValidationError{Field: fmt.Sprintf("agents[%d].batch", i), Reason: "must be a positive integer"}
		}
		if a.Model == "" {
			return nil, &ValidationError{Field: fmt.Sprintf("agents[%d].model", i), Reason: "must not be empty"}
		}
	}

	return &model.AgentRequest{
		Prompt:       trimmed,
		Org:          s.Org,
		Repo:         s.Repo,
		Agents:       agents,
		GHToken:      ghToken,
		SourceBranch: s.SourceBranch,
		TargetBranch: s.TargetBranch,
		BranchPrefix: s.BranchPrefix,
	}, nil
}
