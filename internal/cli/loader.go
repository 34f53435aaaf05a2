package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Error codes shared by commands.
const (
	ErrCodeNotFound   = "E_NOT_FOUND"
	ErrCodeBadInput   = "E_BAD_INPUT"
	ErrCodeInvalid    = "E_INVALID"
	ErrCodeWriteError = "E_WRITE"
)

// ReadInput loads a whole input file, mapping IO problems to a
// command-level ExitError.
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("%s: file not found: %s", ErrCodeNotFound, path))
		}
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("%s: reading %s", ErrCodeBadInput, path), err)
	}
	return data, nil
}

// LoadYAML reads and decodes a YAML document into target.
func LoadYAML(path string, target interface{}) error {
	data, err := ReadInput(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("%s: parsing %s", ErrCodeBadInput, path), err)
	}
	return nil
}
