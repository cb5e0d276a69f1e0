package basic

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the user-facing texts of the interpreter.
type Config struct {
	// Prompt is printed before each line read by an interactive shell.
	Prompt string `yaml:"prompt"`
	// Banner is printed once when an interactive shell starts.
	Banner string `yaml:"banner"`
	// InputPrompt is printed each time INPUT waits for a number.
	InputPrompt string `yaml:"input_prompt"`
	// InvalidNumber is printed when INPUT receives something that is not an
	// integer.
	InvalidNumber string `yaml:"invalid_number"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:        "> ",
		Banner:        "Minimal BASIC. Type HELP for help, QUIT to exit.",
		InputPrompt:   " ? ",
		InvalidNumber: "INVALID NUMBER",
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	config, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// ParseConfig decodes a YAML document over the default configuration.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return config, nil
}
