package config

// Hardcoded fallbacks applied when neither the config file nor the
// environment supplies a value.
const (
	FallbackMethod       = "swe_agent"
	FallbackModel        = "gpt-4"
	FallbackBatch        = 1
	FallbackOrg          = "interactive"
	FallbackRepo         = "cli"
	FallbackBranch       = "main"
	FallbackBranchPrefix = "agent_router"
)

// Settings are the effective per-session values used to build requests.
// Read-only after resolution.
type Settings struct {
	Method       string
	Batch        int
	Model        string
	Org          string
	Repo         string
	SourceBranch string
	TargetBranch string
	BranchPrefix string
}

// Overrides carries command-line values that beat config file defaults.
type Overrides struct {
	SourceBranch string
	TargetBranch string
	BranchPrefix string
}

// Resolve produces the effective settings from config defaults, fallbacks,
// and CLI overrides. Both the one-shot path and the interactive shell go
// through this single function so the two entry points cannot drift.
func Resolve(cfg *Config, ov Overrides) Settings {
	s := Settings{
		Method:       orDefault(cfg.Defaults.Method, FallbackMethod),
		Model:        orDefault(cfg.Defaults.Model, FallbackModel),
		Org:          orDefault(cfg.Defaults.Org, FallbackOrg),
		Repo:         orDefault(cfg.Defaults.Repo, FallbackRepo),
		SourceBranch: orDefault(cfg.Defaults.SourceBranch, FallbackBranch),
		TargetBranch: orDefault(cfg.Defaults.TargetBranch, FallbackBranch),
		BranchPrefix: orDefault(cfg.Defaults.BranchPrefix, FallbackBranchPrefix),
		Batch:        cfg.Defaults.Batch,
	}
	if s.Batch < 1 {
		s.Batch = FallbackBatch
	}

	if ov.SourceBranch != "" {
		s.SourceBranch = ov.SourceBranch
	}
	if ov.TargetBranch != "" {
		s.TargetBranch = ov.TargetBranch
	}
	if ov.BranchPrefix != "" {
		s.BranchPrefix = ov.BranchPrefix
	}

	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
