package stratcfg

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadYAML accepts the same document shapes in YAML, converting them
// to the canonical JSON form before loading. Byte-for-byte round-trip
// via Source() is only guaranteed for JSON sources; a YAML set's
// Source() returns the converted form.
func LoadYAML(src []byte, opts ...Option) (*ConfigSet, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("yaml: %w", err)}
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("yaml document not representable as JSON: %w", err)}
	}
	return Load(buf, opts...)
}
