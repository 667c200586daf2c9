package model

// AgentDetail describes one execution-engine configuration submitted as part
// of a batch request. A remote may fan a prompt out to several of these.
type AgentDetail struct {
	Method     string `json:"method" yaml:"method"`
	Batch      int    `json:"batch" yaml:"batch"`
	Model      string `json:"model" yaml:"model"`
	LLMBaseURL string `json:"llm_base_url,omitempty" yaml:"llm_base_url,omitempty"`
	LLMAPIKey  string `json:"llm_api_key,omitempty" yaml:"llm_api_key,omitempty"`
}

// AgentRequest is the unit of work posted to a remote's /execute_batch
// endpoint. It is built once per submission and never mutated afterwards.
type AgentRequest struct {
	Prompt       string        `json:"prompt"`
	Org          string        `json:"org,omitempty"`
	Repo         string        `json:"repo,omitempty"`
	Agents       []AgentDetail `json:"agents"`
	GHToken      string        `json:"gh_token,omitempty"`
	SourceBranch string        `json:"source_branch"`
	TargetBranch string        `json:"target_branch"`
	BranchPrefix string        `json:"branch_prefix"`
}
