package urlbuilder

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// Endpoint is a plain descriptor candidate. All three fields must be
// non-empty for it to resolve to a base.
type Endpoint struct {
	Protocol string `json:"protocol"`
	Host     string `json:"host"`
	Port     string `json:"port"`
}

// Base returns protocol://host:port, or "" when any field is empty.
func (e Endpoint) Base() string {
	if e.Protocol == "" || e.Host == "" || e.Port == "" {
		return ""
	}
	return fmt.Sprintf("%s://%s:%s", e.Protocol, e.Host, e.Port)
}

// EndpointFromJSON extracts an endpoint descriptor from a JSON document,
// addressed by a JSONPath expression (e.g. "$.services.db"). The addressed
// value must be an object; its protocol, host and port fields are read, with
// a numeric port converted to its decimal string form.
func EndpointFromJSON(data []byte, path string) (*Endpoint, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing endpoint document: %w", err)
	}
	raw, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating JSONPath %q: %w", path, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("JSONPath %q addressed a %T, expected an object", path, raw)
	}
	return &Endpoint{
		Protocol: stringField(obj, "protocol"),
		Host:     stringField(obj, "host"),
		Port:     stringField(obj, "port"),
	}, nil
}

func stringField(obj map[string]any, key string) string {
	value, ok := obj[key]
	if !ok || value == nil {
		return ""
	}
	// JSON numbers decode as float64; ports are integral
	if f, ok := value.(float64); ok {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(value)
}
