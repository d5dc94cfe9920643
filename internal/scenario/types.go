package scenario

// Scenario is the full declarative document.
type Scenario struct {
	Name            string            `yaml:"name" json:"name"`
	Description     string            `yaml:"description" json:"description"`
	Version         string            `yaml:"version" json:"version"`
	Author          string            `yaml:"author" json:"author"`
	Tags            []string          `yaml:"tags" json:"tags"`
	Setup           Setup             `yaml:"setup" json:"setup"`
	Steps           []Step            `yaml:"steps" json:"steps"`
	Validation      []Validation      `yaml:"validation" json:"validation"`
	ExpectedOutcome string            `yaml:"expected_outcome" json:"expected_outcome"`
}

// Setup describes the network to build from scratch before any step runs.
type Setup struct {
	Nodes []NodeSetup `yaml:"nodes" json:"nodes"`
	Links []LinkSetup `yaml:"links" json:"links"`
}

// NodeSetup is one node to create during setup.
type NodeSetup struct {
	Name   string         `yaml:"name" json:"name"`
	Type   string         `yaml:"type" json:"type"`
	IP     string         `yaml:"ip" json:"ip"`
	VLAN   *int           `yaml:"vlan,omitempty" json:"vlan,omitempty"`
	Config map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
}

// LinkSetup is one link to create during setup.
type LinkSetup struct {
	From          string `yaml:"from" json:"from"`
	To            string `yaml:"to" json:"to"`
	DelayMs       *int   `yaml:"delay_ms,omitempty" json:"delay_ms,omitempty"`
	BandwidthMbps *int   `yaml:"bandwidth_mbps,omitempty" json:"bandwidth_mbps,omitempty"`
	PacketLoss    *float64 `yaml:"packet_loss,omitempty" json:"packet_loss,omitempty"`
}

// Step is one ordered action: ping, send, configure, wait, or validate.
type Step struct {
	Name   string         `yaml:"name" json:"name"`
	Action string         `yaml:"action" json:"action"`
	Params map[string]any `yaml:"params" json:"params"`
	Expect map[string]any `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Validation is one post-run check, independent of step order.
type Validation struct {
	Type      string         `yaml:"type" json:"type"`
	Params    map[string]any `yaml:"params" json:"params"`
	Threshold float64        `yaml:"threshold,omitempty" json:"threshold,omitempty"`
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Name    string `json:"name"`
	Action  string `json:"action"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ValidationResult records the outcome of one validator.
type ValidationResult struct {
	Type    string         `json:"type"`
	Passed  bool           `json:"passed"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Result is the complete record of one scenario run: every step and
// validator outcome plus an overall Passed flag (true iff every one of
// them passed).
type Result struct {
	ScenarioName string             `json:"scenario_name"`
	Steps        []StepResult       `json:"steps"`
	Validations  []ValidationResult `json:"validations"`
	Passed       bool               `json:"passed"`
}
