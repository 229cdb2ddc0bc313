package oneof

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/oneof/pkg/oneof/typeset"
)

// Containers encode as a {tag, value} envelope. Decoding resolves the
// payload type from the set's own member list; a tag outside [0, Len) or a
// payload that does not decode into the tagged member is an ordinary error,
// never a defect.

type jsonEnvelope struct {
	Tag   int             `json:"tag"`
	Value json.RawMessage `json:"value"`
}

func marshalJSON(s Set) ([]byte, error) {
	raw, err := json.Marshal(s.Value())
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonEnvelope{Tag: s.Tag(), Value: raw})
}

func unmarshalJSON(s mutableSet, data []byte) error {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	set := s.members()
	if env.Tag < 0 || env.Tag >= len(set) {
		return fmt.Errorf("oneof: tag %d out of range for %s", env.Tag, typeset.Format(set))
	}

	target := reflect.New(set[env.Tag])
	if err := json.Unmarshal(env.Value, target.Interface()); err != nil {
		return fmt.Errorf("oneof: decode member %s: %w", set[env.Tag], err)
	}

	s.setActive(env.Tag, target.Elem().Interface())
	return nil
}

type yamlEnvelope struct {
	Tag   int       `yaml:"tag"`
	Value yaml.Node `yaml:"value"`
}

func marshalYAML(s Set) (any, error) {
	return struct {
		Tag   int `yaml:"tag"`
		Value any `yaml:"value"`
	}{Tag: s.Tag(), Value: s.Value()}, nil
}

func unmarshalYAML(s mutableSet, node *yaml.Node) error {
	var env yamlEnvelope
	if err := node.Decode(&env); err != nil {
		return err
	}

	set := s.members()
	if env.Tag < 0 || env.Tag >= len(set) {
		return fmt.Errorf("oneof: tag %d out of range for %s", env.Tag, typeset.Format(set))
	}

	target := reflect.New(set[env.Tag])
	if err := env.Value.Decode(target.Interface()); err != nil {
		return fmt.Errorf("oneof: decode member %s: %w", set[env.Tag], err)
	}

	s.setActive(env.Tag, target.Elem().Interface())
	return nil
}
