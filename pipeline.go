package tabular

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CellSpec is a cell value in a pipeline document. YAML numbers become
// Number cells, strings become Token cells.
type CellSpec struct {
	Cell Cell
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CellSpec) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err == nil {
		c.Cell = Num(f)
		return nil
	}
	var s string
	if err := value.Decode(&s); err == nil {
		c.Cell = Tok(s)
		return nil
	}
	return errors.Wrapf(ErrInvalidPipeline,
		"default value must be a number or a string, got %q", value.Value)
}

// Step is one preprocessing operation of a declarative pipeline. Method
// defaults per operation match the direct API defaults: mean for
// fillna, minMax for scale, label for encode.
type Step struct {
	Op      string    `yaml:"op" validate:"required,oneof=fillna dropna scale encode"`
	Method  string    `yaml:"method,omitempty"`
	Columns []string  `yaml:"columns,omitempty"`
	Default *CellSpec `yaml:"default,omitempty"`
}

// Pipeline is an ordered list of preprocessing steps, typically loaded
// from a YAML document:
//
//	steps:
//	  - op: fillna
//	    method: median
//	    columns: [calories]
//	  - op: scale
//	    method: standard
//	  - op: encode
//	    method: oneHot
//	    columns: [category]
type Pipeline struct {
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

var pipelineValidate = validator.New()

// LoadPipeline decodes and validates a pipeline document. Unknown YAML
// fields and unknown operations fail with ErrInvalidPipeline.
func LoadPipeline(r io.Reader) (*Pipeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Pipeline
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrapf(ErrInvalidPipeline, "decode: %v", err)
	}
	if err := pipelineValidate.Struct(&p); err != nil {
		return nil, errors.Wrapf(ErrInvalidPipeline, "validate: %v", err)
	}
	return &p, nil
}

// Run applies the steps in order through the facade and returns the
// first failure, identifying the failing step.
func (p *Pipeline) Run(pp *Preprocessing) error {
	for i, st := range p.Steps {
		switch st.Op {
		case "fillna":
			method := FillMean
			if st.Method != "" {
				method = FillMethod(st.Method)
			}
			def := NA()
			if st.Default != nil {
				def = st.Default.Cell
			}
			pp.FillNA(method, def, st.Columns...)
		case "dropna":
			pp.DropNA(st.Columns...)
		case "scale":
			method := ScaleMinMax
			if st.Method != "" {
				method = ScaleMethod(st.Method)
			}
			pp.Scale(method, st.Columns...)
		case "encode":
			method := EncodeLabel
			if st.Method != "" {
				method = EncodeMethod(st.Method)
			}
			pp.Encode(method, st.Columns...)
		}
		if err := pp.Err(); err != nil {
			return errors.Wrapf(err, "pipeline step %d (%s)", i+1, st.Op)
		}
	}
	return nil
}
