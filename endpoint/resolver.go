// Package endpoint resolves logical endpoint names into sanitized,
// checksummed connection identifiers. The directory of endpoints is a
// JSON document, normally supplied through the ENDPOINTS environment
// variable; every failure mode degrades to the caller's default value
// rather than surfacing an error.
package endpoint

import (
	"encoding/json"
	"os"

	"github.com/make87/ros-minimal-client/logger"
)

// EnvVar is the environment variable holding the endpoint directory.
const EnvVar = "ENDPOINTS"

// FallbackReason tags why a resolution fell back to the default value.
type FallbackReason int

const (
	// FallbackNone means the endpoint was resolved from the directory.
	FallbackNone FallbackReason = iota
	// FallbackEnvUnset means the directory variable was not set.
	FallbackEnvUnset
	// FallbackBadJSON means the directory did not parse or validate.
	FallbackBadJSON
	// FallbackNoMatch means no record had the name and a usable key.
	FallbackNoMatch
)

// String returns the string representation of the fallback reason
func (r FallbackReason) String() string {
	switch r {
	case FallbackNone:
		return "none"
	case FallbackEnvUnset:
		return "env-unset"
	case FallbackBadJSON:
		return "bad-json"
	case FallbackNoMatch:
		return "no-match"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of an endpoint lookup: the identifier to
// connect to, and why (if at all) it is the fallback default.
type Resolution struct {
	Value    string
	Fallback FallbackReason
}

// Resolved reports whether the value came from the directory rather
// than the default.
func (r Resolution) Resolved() bool {
	return r.Fallback == FallbackNone
}

// Resolve reads the endpoint directory from the ENDPOINTS environment
// variable once and looks up searchName. An unset variable degrades to
// defaultValue with a warning.
func Resolve(searchName, defaultValue string) Resolution {
	raw, ok := os.LookupEnv(EnvVar)
	if !ok {
		logger.Warnf("environment variable %s not set, using default value", EnvVar)
		return Resolution{Value: defaultValue, Fallback: FallbackEnvUnset}
	}
	return ResolveIn([]byte(raw), searchName, defaultValue)
}

// ResolveIn looks up searchName in a raw JSON endpoint directory. The
// first record whose endpoint_name matches and whose endpoint_key is a
// string wins; its key is transformed into the connection identifier.
// Malformed documents and lookup misses degrade to defaultValue.
func ResolveIn(raw []byte, searchName, defaultValue string) Resolution {
	doc, res := parseDirectory(raw, defaultValue)
	if doc == nil {
		return res
	}

	if endpoints, ok := doc["endpoints"].([]interface{}); ok {
		for _, entry := range endpoints {
			record, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			if name, ok := record["endpoint_name"].(string); !ok || name != searchName {
				continue
			}
			if key, ok := record["endpoint_key"].(string); ok {
				return Resolution{Value: Transform(key)}
			}
		}
	}

	logger.Infof("endpoint %s not found or missing endpoint_key, using default value", searchName)
	return Resolution{Value: defaultValue, Fallback: FallbackNoMatch}
}

// parseDirectory decodes and schema-validates the raw directory. A nil
// map with a populated Resolution signals a fallback.
func parseDirectory(raw []byte, defaultValue string) (map[string]interface{}, Resolution) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warnf("error parsing %s: %v, using default value", EnvVar, err)
		return nil, Resolution{Value: defaultValue, Fallback: FallbackBadJSON}
	}

	if err := validateDirectory(raw); err != nil {
		logger.Warnf("invalid %s document: %v, using default value", EnvVar, err)
		return nil, Resolution{Value: defaultValue, Fallback: FallbackBadJSON}
	}

	if doc == nil {
		// A literal JSON null parses without error.
		logger.Warnf("empty %s document, using default value", EnvVar)
		return nil, Resolution{Value: defaultValue, Fallback: FallbackBadJSON}
	}

	return doc, Resolution{}
}
