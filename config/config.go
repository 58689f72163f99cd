package config

import (
	"fmt"
	"os"
	"time"

	"github.com/foomo/htmlcheck/vo"
)

const (
	DefaultChecksFile = "checks.json"
	DefaultAgent      = "htmlcheck"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type Config struct {
	Checks  string
	File    string
	URL     string
	Format  Format
	Agent   string
	Timeout time.Duration
	Robots  bool
	Verbose bool
}

func NewConfig() *Config {
	return &Config{
		Checks: DefaultChecksFile,
		Format: FormatJSON,
		Agent:  DefaultAgent,
	}
}

// Source picks the acquisition mode from the file and url settings
func (c *Config) Source() (source vo.Source, err error) {
	switch true {
	case c.File != "" && c.URL != "":
		err = ErrConflictingSources
	case c.File != "":
		source = vo.Source{Mode: vo.ModeFile, Location: c.File}
	case c.URL != "":
		source = vo.Source{Mode: vo.ModeURL, Location: c.URL}
	default:
		err = ErrNoSource
	}
	return
}

// Validate checks the config and makes sure, that all files it references exist
func (c *Config) Validate() error {
	if _, errSource := c.Source(); errSource != nil {
		return errSource
	}
	errAssertChecks := AssertFileExists(c.Checks)
	if errAssertChecks != nil {
		return errAssertChecks
	}
	if c.File != "" {
		errAssertFile := AssertFileExists(c.File)
		if errAssertFile != nil {
			return errAssertFile
		}
	}
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// AssertFileExists returns a *NotExistError, if there is nothing at path
func AssertFileExists(path string) error {
	_, errStat := os.Stat(path)
	if errStat != nil {
		if os.IsNotExist(errStat) {
			return &NotExistError{Path: path}
		}
		return errStat
	}
	return nil
}
