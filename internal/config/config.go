package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/s22625/agentcli/internal/model"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "agent_config.yaml"

// ErrNoRemote is returned when an operation needs a remote but none is configured.
var ErrNoRemote = errors.New("no remote configured")

// Defaults holds the defaults section of the config file.
type Defaults struct {
	Method       string `yaml:"method"`
	Batch        int    `yaml:"batch"`
	Model        string `yaml:"model"`
	Org          string `yaml:"org"`
	Repo         string `yaml:"repo"`
	SourceBranch string `yaml:"source_branch"`
	TargetBranch string `yaml:"target_branch"`
	BranchPrefix string `yaml:"branch_prefix"`
	GHToken      string `yaml:"gh_token"`
}

// Config is the parsed agent_config.yaml.
type Config struct {
	Defaults Defaults            `yaml:"defaults"`
	Remotes  []model.Remote      `yaml:"remotes"`
	Agents   []model.AgentDetail `yaml:"agents"`
}

// Load reads and parses the config file at path. A missing or unparsable
// file is never fatal: the returned Config is always usable (possibly empty)
// and the error, when non-nil, is a warning for the caller to report.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, fmt.Errorf("config file %s not found, using defaults", path)
		}
		applyEnv(cfg)
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		// Discard whatever half-parsed state yaml left behind.
		cfg = &Config{}
		applyEnv(cfg)
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv applies AGENTCLI_* environment variables on top of file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("AGENTCLI_METHOD"); v != "" {
		cfg.Defaults.Method = v
	}
	if v := os.Getenv("AGENTCLI_MODEL"); v != "" {
		cfg.Defaults.Model = v
	}
	if v := os.Getenv("AGENTCLI_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Defaults.Batch = n
		}
	}
	if v := os.Getenv("AGENTCLI_ORG"); v != "" {
		cfg.Defaults.Org = v
	}
	if v := os.Getenv("AGENTCLI_REPO"); v != "" {
		cfg.Defaults.Repo = v
	}
	if v := os.Getenv("AGENTCLI_GH_TOKEN"); v != "" {
		cfg.Defaults.GHToken = v
	}
}

// PickRemote returns the remote that submissions, polling, and job listings
// target. Selection is deliberately explicit in one place: today it is the
// first configured entry, and changing the policy means changing only this.
func PickRemote(cfg *Config) (model.Remote, error) {
	if len(cfg.Remotes) == 0 {
		return model.Remote{}, ErrNoRemote
	}
	return cfg.Remotes[0], nil
}
