package endpoint

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// directorySchema constrains only the directory shape the lookup relies
// on; individual records are checked field-by-field during the scan so a
// single junk record cannot poison the whole directory.
const directorySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "endpoints": {
      "type": "array"
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func directoryValidator() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(directorySchema)
		compiledSchema, schemaErr = gojsonschema.NewSchema(loader)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile endpoint directory schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateDirectory checks a parsed-JSON directory document against the
// embedded schema.
func validateDirectory(doc []byte) error {
	schema, err := directoryValidator()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		var errors []string
		for _, err := range result.Errors() {
			errors = append(errors, fmt.Sprintf("- %s", err))
		}
		return fmt.Errorf("endpoint directory validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
