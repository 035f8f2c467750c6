package config

// Settings represents the structure of the .pipbridge.yaml settings file.
// Paths are relative to the directory containing the Pipfile.
type Settings struct {
	ProjectName   string `yaml:"project_name"`
	Pyproject     string `yaml:"pyproject"`
	ResolvedGraph string `yaml:"resolved_graph"`
	LockFile      string `yaml:"lock_file"`
	StateDir      string `yaml:"state_dir"`
}
