package config

// Config is the top-level YAML structure.
type Config struct {
	InputDir    string       `yaml:"input_dir"`
	OutputDir   string       `yaml:"output_dir"`
	Formats     []string     `yaml:"formats"`
	Watch       bool         `yaml:"watch"`
	MetricsAddr string       `yaml:"metrics_addr"`
	Engine      EngineConf   `yaml:"engine"`
	Mappings    MappingsConf `yaml:"mappings"`
}

// EngineConf holds tunable processing settings.
type EngineConf struct {
	MemberWorkers int  `yaml:"member_workers"`
	ReprocessAll  bool `yaml:"reprocess_all"`
}

// MappingsConf carries optional label-mapping overrides layered on top of
// the built-in registry tables.
type MappingsConf struct {
	Activities map[string]string `yaml:"activities"`
	Parties    map[string]string `yaml:"parties"`
	States     map[string]string `yaml:"states"`
}
