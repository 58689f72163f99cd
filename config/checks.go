package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadChecks reads a list of selectors and returns it sorted. The file is a
// json array of strings, .yaml and .yml files are read as yaml sequences.
func LoadChecks(filename string) (checks []string, err error) {
	checkBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		if os.IsNotExist(errRead) {
			return nil, &NotExistError{Path: filename}
		}
		return nil, errRead
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(checkBytes, &checks)
	default:
		err = json.Unmarshal(checkBytes, &checks)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse checks from %s: %w", filename, err)
	}
	if checks == nil {
		return nil, fmt.Errorf("could not parse checks from %s: %w", filename, ErrChecksNotAList)
	}
	sort.Strings(checks)
	return checks, nil
}
