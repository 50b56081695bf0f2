// Package config loads the optional `.decafc.yaml` project file:
// project-level defaults for --target, --debug, -o, and --ir that
// cobra flags on the command line override.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config mirrors the CLI flags, including --ir, so a project can pin
// defaults without repeating flags on every invocation.
type Config struct {
	Target string `yaml:"target"`
	Debug  bool   `yaml:"debug"`
	Output string `yaml:"output"`
	IR     string `yaml:"ir"`
}

// FileName is the project config file decafc looks for in the directory
// that holds the input file.
const FileName = ".decafc.yaml"

// Load reads FileName from dir. A missing file is not an error: Load
// returns a zero Config so callers fall back entirely to CLI flags and
// built-in defaults.
func Load(dir string) (Config, error) {
	path := dir + string(os.PathSeparator) + FileName
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge overlays the value of every flag marked as set onto cfg, zero
// values included, giving explicit CLI flags priority over the project
// file.
func Merge(cfg Config, target string, debug bool, output string, ir string, targetSet, debugSet, outputSet, irSet bool) Config {
	out := cfg
	if targetSet {
		out.Target = target
	}
	if debugSet {
		out.Debug = debug
	}
	if outputSet {
		out.Output = output
	}
	if irSet {
		out.IR = ir
	}
	return out
}
