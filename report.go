package htmlcheck

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/foomo/htmlcheck/config"
	"github.com/foomo/htmlcheck/vo"
	"gopkg.in/yaml.v3"
)

const reportIndent = 4

// PrintResult writes result to w in the given format
func PrintResult(w io.Writer, result vo.Result, format config.Format) error {
	switch format {
	case config.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		return enc.Encode(result)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(reportIndent)
		errEncode := enc.Encode(result)
		if errEncode != nil {
			return errEncode
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}
