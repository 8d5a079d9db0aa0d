// Package script replays recorded UI events against a map session.
package script

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Event types of a session script.
const (
	EventFilter = "filter"
	EventDrag   = "drag"
	EventResize = "resize"
	EventHover  = "hover"
)

// Script is an ordered list of UI events.
type Script struct {
	Events []Event `json:"events" yaml:"events" validate:"dive"`
}

// Event is one user interaction.
//
//	filter: checked lists the names of every checked checkbox
//	drag:   circle is moved to (x, y)
//	resize: circle's slider is set to value
//	hover:  pointer is at (x, y)
type Event struct {
	Type    string   `json:"type" yaml:"type" validate:"required,oneof=filter drag resize hover"`
	Circle  string   `json:"circle" yaml:"circle" validate:"required_if=Type drag,required_if=Type resize"`
	X       *float64 `json:"x" yaml:"x" validate:"required_if=Type drag,required_if=Type hover"`
	Y       *float64 `json:"y" yaml:"y" validate:"required_if=Type drag,required_if=Type hover"`
	Value   *float64 `json:"value" yaml:"value" validate:"required_if=Type resize"`
	Checked []string `json:"checked" yaml:"checked"`
}

// Load reads and validates a YAML script.
func Load(path string) (*Script, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to load script %s", path)
	}

	s := new(Script)
	if err := k.UnmarshalWithConf("", s, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           s,
			TagName:          "yaml",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode script %s", path)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(s); err != nil {
		return nil, errors.Wrapf(err, "invalid script %s", path)
	}

	return s, nil
}
