package words

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds the run configuration for a word-finding run.
type Config struct {
	// OutputFile is the path of the plain-text artifact the candidate words
	// are written to. The file is overwritten on each run.
	OutputFile string `yaml:"output_file"`
	// Matcher is the external dictionary-matching command, given as the
	// program followed by its arguments. The artifact path is appended as
	// the final argument when the matcher is run.
	Matcher []string `yaml:"matcher"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() Config {
	return Config{
		OutputFile: "permutated_words.txt",
		Matcher:    []string{"python", "findword.py"},
	}
}

// ReadConfig reads a YAML configuration file. Fields left unset in the file
// keep their default values.
func ReadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()

	configYaml, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	var fileCfg Config
	err = yaml.Unmarshal(configYaml, &fileCfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	if fileCfg.OutputFile != "" {
		cfg.OutputFile = fileCfg.OutputFile
	}
	if len(fileCfg.Matcher) != 0 {
		cfg.Matcher = fileCfg.Matcher
	}
	return cfg, nil
}
