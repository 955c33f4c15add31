package process

import "strings"

// ProcessConfig describes an external program the generator may launch.
type ProcessConfig struct {
	Name    string   `yaml:"name" json:"name"`
	Command string   `yaml:"command" json:"command"`
	Args    []string `yaml:"args" json:"args"`
}

// ParseCommandLine splits a configured command line such as "timidity -Os"
// into a ProcessConfig. It returns false for a blank line.
// Quoting is not supported; arguments are split on whitespace.
func ParseCommandLine(name, line string) (ProcessConfig, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ProcessConfig{}, false
	}
	return ProcessConfig{Name: name, Command: fields[0], Args: fields[1:]}, true
}
