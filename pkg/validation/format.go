// Package validation provides checks applied to caller input before it
// reaches the engine.
package validation

import (
	"fmt"

	"github.com/iwvelando/solar-forecast/pkg/constants"
)

var outputFormats = []string{constants.OutputFormatPretty, constants.OutputFormatCSV}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range outputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, format)
}
