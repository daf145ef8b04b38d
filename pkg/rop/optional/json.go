package optional

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	markerKey  = "isOptionalInstance"
	presentKey = "valuePresent"
	valueKey   = "value"
)

type shapeOut struct {
	IsOptionalInstance bool `json:"isOptionalInstance" yaml:"isOptionalInstance"`
	ValuePresent       bool `json:"valuePresent" yaml:"valuePresent"`
	ValueAbsent        bool `json:"valueAbsent" yaml:"valueAbsent"`
	Value              any  `json:"value,omitempty" yaml:"value,omitempty"`
}

func (o Option[T]) shape() shapeOut {
	s := shapeOut{
		IsOptionalInstance: true,
		ValuePresent:       o.present,
		ValueAbsent:        !o.present,
	}
	if o.present {
		s.Value = o.value
	}
	return s
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.shape())
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var in struct {
		IsOptionalInstance *bool           `json:"isOptionalInstance"`
		ValuePresent       bool            `json:"valuePresent"`
		Value              json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.IsOptionalInstance == nil || !*in.IsOptionalInstance {
		return ErrNotOptional
	}

	if !in.ValuePresent {
		*o = None[T]()
		return nil
	}

	var v T
	if len(in.Value) > 0 {
		if err := json.Unmarshal(in.Value, &v); err != nil {
			return fmt.Errorf("optional: decode value: %w", err)
		}
	}
	*o = Some(v)
	return nil
}

func (o Option[T]) MarshalYAML() (any, error) {
	return o.shape(), nil
}

func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	var in struct {
		IsOptionalInstance *bool     `yaml:"isOptionalInstance"`
		ValuePresent       bool      `yaml:"valuePresent"`
		Value              yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&in); err != nil {
		return err
	}
	if in.IsOptionalInstance == nil || !*in.IsOptionalInstance {
		return ErrNotOptional
	}

	if !in.ValuePresent {
		*o = None[T]()
		return nil
	}

	var v T
	if !in.Value.IsZero() {
		if err := in.Value.Decode(&v); err != nil {
			return fmt.Errorf("optional: decode value: %w", err)
		}
	}
	*o = Some(v)
	return nil
}

// FromJSON decodes the serialized shape.
func FromJSON[T any](data []byte) (Option[T], error) {
	var o Option[T]
	if err := json.Unmarshal(data, &o); err != nil {
		return None[T](), err
	}
	return o, nil
}

// FromParsedJSON rebuilds an Option from an already parsed plain object (as
// produced by decoding the serialized shape into map[string]any) or from any
// value implementing Shape. Input without the optional marker is rejected
// with ErrNotOptional.
func FromParsedJSON[T any](obj any) (Option[T], error) {
	if !IsOptional(obj) {
		return None[T](), ErrNotOptional
	}
	if !IsSome(obj) {
		return None[T](), nil
	}

	var raw any
	if s, ok := obj.(Shape); ok {
		raw = s.Payload()
	} else {
		raw = obj.(map[string]any)[valueKey]
	}

	if v, ok := raw.(T); ok {
		return Some(v), nil
	}

	// numbers parse as float64 and objects as maps, so round-trip through JSON
	data, err := json.Marshal(raw)
	if err != nil {
		return None[T](), fmt.Errorf("optional: re-encode value: %w", err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return None[T](), fmt.Errorf("optional: decode value: %w", err)
	}
	return Some(v), nil
}
