package domain

// LoggingConfig controls logger construction for the CLI.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`
	OutputFile string `yaml:"output_file,omitempty" json:"output_file,omitempty"`
}

// OutputConfig controls report rendering for the CLI.
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// Configuration is the complete input to one planner run.
type Configuration struct {
	Property   PropertyDetails         `yaml:"property" json:"property"`
	Projection ProjectionState         `yaml:"projection,omitempty" json:"projection,omitempty"`
	Allocation *ReinvestmentAllocation `yaml:"allocation,omitempty" json:"allocation,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty" json:"output,omitempty"`
}

// SessionState is the externally persisted shape restored at startup:
// one JSON object holding the property snapshot and the active UI tab.
type SessionState struct {
	Property  PropertyDetails `json:"property"`
	ActiveTab string          `json:"activeTab"`
}
