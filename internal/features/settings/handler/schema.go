package handler

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// updateSchema describes the PUT body. Range rules beyond the sign live in domain.Update.
const updateSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "target_margin":            {"type": "number", "minimum": 0},
    "min_margin":               {"type": "number", "minimum": 0},
    "max_bump_above_loadboard": {"type": "number", "minimum": 0},
    "max_negotiation_rounds":   {"type": "integer", "minimum": 1}
  }
}`

var updateSchemaLoader = gojsonschema.NewStringLoader(updateSchema)

// validateUpdate checks body against updateSchema. A non-nil parseErr means the
// body is not JSON at all.
func validateUpdate(body []byte) (violations string, parseErr error) {
	result, err := gojsonschema.Validate(updateSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return "", fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return "", nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return strings.Join(errs, "; "), nil
}
