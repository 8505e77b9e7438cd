package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tour-planner-service/internal/adapters/solver"
)

// LoadSolverConfig reads the external solver invocation settings from a
// YAML file. The original workflow assumed the solver binary at a fixed
// relative path; here command, args, and working directory are all
// explicit configuration.
func LoadSolverConfig(path string) (solver.Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return solver.Config{}, fmt.Errorf("load solver config: read %q: %w", path, err)
	}

	var cfg solver.Config
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return solver.Config{}, fmt.Errorf("load solver config: parse %q: %w", path, err)
	}

	if cfg.Command == "" {
		return solver.Config{}, fmt.Errorf("load solver config: %q: command must be set", path)
	}

	return cfg, nil
}
