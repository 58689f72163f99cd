package htmlcheck

import (
	"context"
	"log/slog"

	"github.com/foomo/htmlcheck/config"
	"github.com/foomo/htmlcheck/vo"
)

// Checker checks documents against the selectors of a checks file
type Checker struct {
	acquirer   *Acquirer
	checksFile string
	logger     *slog.Logger
}

func NewChecker(acquirer *Acquirer, checksFile string, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		acquirer:   acquirer,
		checksFile: checksFile,
		logger:     logger,
	}
}

// Check acquires the document and evaluates all checks against it
func (c *Checker) Check(ctx context.Context, source vo.Source) (result vo.Result, err error) {
	c.logger.Info("checking", "mode", source.Mode, "location", source.Location, "checks", c.checksFile)
	switch source.Mode {
	case vo.ModeFile:
		c.logger.Info("processing file", "file", source.Location)
	case vo.ModeURL:
		c.logger.Info("processing url", "url", source.Location)
	}
	htmlBytes, errAcquire := c.acquirer.Acquire(ctx, source)
	if errAcquire != nil {
		return nil, errAcquire
	}
	return c.CheckHTML(htmlBytes)
}

// CheckHTML evaluates all checks against htmlBytes
func (c *Checker) CheckHTML(htmlBytes []byte) (result vo.Result, err error) {
	c.logger.Info("processing checks", "checks", c.checksFile, "html length", len(htmlBytes))
	checks, errLoad := config.LoadChecks(c.checksFile)
	if errLoad != nil {
		return nil, errLoad
	}
	doc, errDoc := NewDocument(htmlBytes)
	if errDoc != nil {
		return nil, errDoc
	}
	return Evaluate(doc, checks)
}

// Evaluate queries doc for every check. Either all checks are evaluated or an
// error is returned.
func Evaluate(doc Document, checks []string) (result vo.Result, err error) {
	result = make(vo.Result, 0, len(checks))
	for _, selector := range checks {
		count, errQuery := doc.Query(selector)
		if errQuery != nil {
			return nil, errQuery
		}
		result.Add(selector, count > 0)
	}
	return result, nil
}
