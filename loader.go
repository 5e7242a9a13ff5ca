package stratcfg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/evdnx/stratcfg/logger"
	"github.com/evdnx/stratcfg/metrics"
)

// Option customizes a Load call.
type Option func(*options)

type options struct {
	log       logger.Logger
	expandEnv bool
}

// WithLogger makes the loader report loads and convention warnings
// through l. The default logger discards everything.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithEnvExpand substitutes ${VAR} references in the document with
// environment values before parsing. Only the braced form is
// expanded; a bare $ passes through untouched, so dollar amounts in
// string values survive. Unset variables expand to the empty string.
// Source() returns the expanded bytes.
func WithEnvExpand() Option {
	return func(o *options) { o.expandEnv = true }
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnvRefs(src []byte) []byte {
	return envRef.ReplaceAllFunc(src, func(m []byte) []byte {
		return []byte(os.Getenv(string(m[2 : len(m)-1])))
	})
}

// ConfigSet is an immutable set of named configuration entries. It is
// safe for unsynchronized concurrent reads; nothing is ever mutated
// after Load returns.
type ConfigSet struct {
	src     []byte
	entries map[string]json.RawMessage
	opts    options
}

// Load parses a serialized document. Top-level keys name entries;
// entry bodies are held raw until the caller selects a schema via
// Strategy or Scenario. A malformed document yields a *ParseError
// naming the offending location.
func Load(src []byte, opts ...Option) (*ConfigSet, error) {
	o := options{log: logger.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.expandEnv {
		src = expandEnvRefs(src)
	}

	var entries map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(src))
	if err := dec.Decode(&entries); err != nil {
		metrics.Loads.WithLabelValues("parse_error").Inc()
		return nil, newParseError(src, err)
	}
	// Reject trailing content after the document object.
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		metrics.Loads.WithLabelValues("parse_error").Inc()
		line, col := lineCol(src, dec.InputOffset())
		return nil, &ParseError{Line: line, Col: col, Err: errors.New("trailing data after document")}
	}

	if entries == nil {
		entries = map[string]json.RawMessage{}
	}

	metrics.Loads.WithLabelValues("ok").Inc()
	metrics.EntriesLoaded.Set(float64(len(entries)))
	o.log.Info("config_loaded", logger.Int("entries", len(entries)))
	return &ConfigSet{src: src, entries: entries, opts: o}, nil
}

// LoadFile reads path and calls Load.
func LoadFile(path string, opts ...Option) (*ConfigSet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return Load(src, opts...)
}

// Source returns a copy of the exact bytes the set was loaded from,
// for byte-for-byte round-trips with external tooling.
func (s *ConfigSet) Source() []byte {
	return append([]byte(nil), s.src...)
}

// Len returns the number of top-level entries.
func (s *ConfigSet) Len() int { return len(s.entries) }

// Has reports whether name is present. Matching is exact and
// case-sensitive.
func (s *ConfigSet) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Names returns every top-level key, sorted.
func (s *ConfigSet) Names() []string {
	out := make([]string, 0, len(s.entries))
	for name := range s.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Raw returns a copy of the undecoded body of the named entry, or a
// *NotFoundError.
func (s *ConfigSet) Raw(name string) (json.RawMessage, error) {
	raw, ok := s.entries[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return append(json.RawMessage(nil), raw...), nil
}

// Strategy decodes and validates the named entry against the
// StrategyDefinition schema. Convention findings are logged at Warn;
// hard violations come back as a *ValidationError.
func (s *ConfigSet) Strategy(name string) (*StrategyDefinition, error) {
	raw, ok := s.entries[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	var def StrategyDefinition
	if err := decodeEntry(name, "strategy", raw, &def); err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		metrics.EntryDecodes.WithLabelValues("strategy", "invalid").Inc()
		metrics.ValidationFailures.WithLabelValues("strategy").Inc()
		return nil, named(name, err)
	}
	s.warnConventions(name, def.Conventions())
	metrics.EntryDecodes.WithLabelValues("strategy", "ok").Inc()
	return &def, nil
}

// Scenario decodes and validates the named entry against the
// TestScenario schema.
func (s *ConfigSet) Scenario(name string) (*TestScenario, error) {
	raw, ok := s.entries[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	var sc TestScenario
	if err := decodeEntry(name, "scenario", raw, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		metrics.EntryDecodes.WithLabelValues("scenario", "invalid").Inc()
		metrics.ValidationFailures.WithLabelValues("scenario").Inc()
		return nil, named(name, err)
	}
	s.warnConventions(name, sc.Conventions())
	metrics.EntryDecodes.WithLabelValues("scenario", "ok").Inc()
	return &sc, nil
}

func (s *ConfigSet) warnConventions(name string, vs []Violation) {
	for _, v := range vs {
		s.opts.log.Warn("convention_deviation",
			logger.String("entry", name),
			logger.String("path", v.Path),
			logger.String("rule", v.Rule),
		)
	}
}

// decodeEntry unmarshals one raw entry into dst. The document already
// parsed, so any decode failure here is a semantic problem with a
// well-formed entry and surfaces as a *ValidationError: type
// mismatches address the mismatched field, anything else the entry as
// a whole.
func decodeEntry(name, schema string, raw json.RawMessage, dst any) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}
	metrics.EntryDecodes.WithLabelValues(schema, "invalid").Inc()
	metrics.ValidationFailures.WithLabelValues(schema).Inc()
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{
			Entry: name,
			Violations: []Violation{{
				Path: typeErr.Field,
				Rule: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}},
		}
	}
	return &ValidationError{
		Entry: name,
		Violations: []Violation{{
			Rule: fmt.Sprintf("cannot decode entry: %v", err),
		}},
	}
}

// named stamps the entry name onto a validation error.
func named(name string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		verr.Entry = name
		return verr
	}
	return err
}

// newParseError attaches line/column information when the decoder
// reports a byte offset.
func newParseError(src []byte, err error) *ParseError {
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		line, col := lineCol(src, synErr.Offset)
		return &ParseError{Line: line, Col: col, Err: err}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := lineCol(src, typeErr.Offset)
		return &ParseError{Line: line, Col: col, Err: fmt.Errorf("document root must be an object, got %s", typeErr.Value)}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		line, col := lineCol(src, int64(len(src)))
		return &ParseError{Line: line, Col: col, Err: errors.New("unexpected end of document")}
	}
	return &ParseError{Err: err}
}
