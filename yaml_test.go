package stratcfg

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

func TestLoadYAMLMatchesJSON(t *testing.T) {
	ysrc, err := os.ReadFile("testdata/sample.yaml")
	if err != nil {
		t.Fatalf("read yaml sample: %v", err)
	}
	yset, err := LoadYAML(ysrc)
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}

	jset := loadSample(t)

	fromYAML, err := yset.Scenario("Testing")
	if err != nil {
		t.Fatalf("yaml Scenario failed: %v", err)
	}
	fromJSON, err := jset.Scenario("Testing")
	if err != nil {
		t.Fatalf("json Scenario failed: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, fromJSON) {
		t.Fatalf("yaml and json decodes differ:\n%+v\n%+v", fromYAML, fromJSON)
	}
}

func TestLoadYAMLParseError(t *testing.T) {
	_, err := LoadYAML([]byte("a:\n  - b\n -  c\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
