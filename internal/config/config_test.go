package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/s22625/agentcli/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent_config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AGENTCLI_METHOD", "AGENTCLI_MODEL", "AGENTCLI_BATCH",
		"AGENTCLI_ORG", "AGENTCLI_REPO", "AGENTCLI_GH_TOKEN",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected warning error for missing file")
	}
	if cfg == nil {
		t.Fatal("config must be usable even when the file is missing")
	}

	s := Resolve(cfg, Overrides{})
	if s.Model != "gpt-4" || s.Batch != 1 || s.Org != "interactive" || s.Repo != "cli" {
		t.Errorf("unexpected fallback settings: %+v", s)
	}
	if s.Method != "swe_agent" {
		t.Errorf("Method = %q, want swe_agent", s.Method)
	}
	if s.SourceBranch != "main" || s.TargetBranch != "main" || s.BranchPrefix != "agent_router" {
		t.Errorf("unexpected branch fallbacks: %+v", s)
	}
}

func TestLoadParseFailure(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "defaults: [not: a: mapping\n")
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected warning error for unparsable file")
	}
	if cfg == nil || len(cfg.Remotes) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadFullConfig(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
defaults:
  method: swe_agent
  batch: 4
  model: gpt-4o
  org: acme
  repo: api
  source_branch: develop
  target_branch: main
  branch_prefix: bot
  gh_token: tok123
remotes:
  - name: r1
    ip: 10.0.0.1
    port: 8080
  - name: r2
    ip: 10.0.0.2
    port: 9090
agents:
  - method: code_agent
    batch: 2
    model: gpt-4o-mini
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(cfg.Remotes) != 2 || cfg.Remotes[0].Name != "r1" || cfg.Remotes[0].Port != 8080 {
		t.Errorf("unexpected remotes: %+v", cfg.Remotes)
	}
	if len(cfg.Agents) != 1 || cfg.Agents[0].Method != "code_agent" || cfg.Agents[0].Batch != 2 {
		t.Errorf("unexpected agents: %+v", cfg.Agents)
	}
	if cfg.Defaults.GHToken != "tok123" {
		t.Errorf("GHToken = %q, want tok123", cfg.Defaults.GHToken)
	}

	s := Resolve(cfg, Overrides{})
	if s.Method != "swe_agent" || s.Batch != 4 || s.Model != "gpt-4o" {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.SourceBranch != "develop" || s.BranchPrefix != "bot" {
		t.Errorf("unexpected branch settings: %+v", s)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGENTCLI_MODEL", "claude-sonnet")
	t.Setenv("AGENTCLI_BATCH", "8")
	t.Setenv("AGENTCLI_GH_TOKEN", "envtok")

	path := writeConfig(t, "defaults:\n  model: gpt-4o\n  batch: 2\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Defaults.Model != "claude-sonnet" {
		t.Errorf("Model = %q, want env override", cfg.Defaults.Model)
	}
	if cfg.Defaults.Batch != 8 {
		t.Errorf("Batch = %d, want 8", cfg.Defaults.Batch)
	}
	if cfg.Defaults.GHToken != "envtok" {
		t.Errorf("GHToken = %q, want envtok", cfg.Defaults.GHToken)
	}
}

func TestEnvBatchInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGENTCLI_BATCH", "zero")

	path := writeConfig(t, "defaults:\n  batch: 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Defaults.Batch != 3 {
		t.Errorf("Batch = %d, want file value 3 when env is invalid", cfg.Defaults.Batch)
	}
}

func TestResolveOverrides(t *testing.T) {
	clearEnv(t)

	cfg := &Config{}
	cfg.Defaults.SourceBranch = "develop"

	s := Resolve(cfg, Overrides{SourceBranch: "release", BranchPrefix: "hotfix"})
	if s.SourceBranch != "release" {
		t.Errorf("SourceBranch = %q, want CLI override", s.SourceBranch)
	}
	if s.TargetBranch != "main" {
		t.Errorf("TargetBranch = %q, want fallback main", s.TargetBranch)
	}
	if s.BranchPrefix != "hotfix" {
		t.Errorf("BranchPrefix = %q, want CLI override", s.BranchPrefix)
	}
}

func TestPickRemote(t *testing.T) {
	cfg := &Config{}
	if _, err := PickRemote(cfg); err != ErrNoRemote {
		t.Errorf("PickRemote on empty list = %v, want ErrNoRemote", err)
	}

	cfg.Remotes = append(cfg.Remotes,
		model.Remote{Name: "r1", IP: "10.0.0.1", Port: 8080},
		model.Remote{Name: "r2", IP: "10.0.0.2", Port: 9090},
	)
	r, err := PickRemote(cfg)
	if err != nil {
		t.Fatalf("PickRemote error: %v", err)
	}
	if r.Name != "r1" {
		t.Errorf("PickRemote = %+v, want first entry", r)
	}
	if r.BaseURL() != "http://10.0.0.1:8080" {
		t.Errorf("BaseURL = %q", r.BaseURL())
	}
}
