package tabular

import (
	"log/slog"

	"github.com/pkg/errors"
)

// ScaleMethod names a scaling strategy for Preprocessing.Scale.
type ScaleMethod string

const (
	ScaleMinMax   ScaleMethod = "minMax"
	ScaleStandard ScaleMethod = "standard"
)

// EncodeMethod names an encoding strategy for Preprocessing.Encode.
type EncodeMethod string

const (
	EncodeLabel  EncodeMethod = "label"
	EncodeOneHot EncodeMethod = "oneHot"
)

// Preprocessing ties the statistics engine and the preprocessing
// collaborators to one shared dataset and exposes them behind chainable
// wrappers:
//
//	pp, err := NewPreprocessing(ds, nil)
//	...
//	err = pp.FillNA(FillMean, NA()).
//		Scale(ScaleStandard, "calories").
//		Encode(EncodeOneHot, "category").
//		Err()
//
// The chain is sticky: the first failing step records its error, later
// steps become no-ops, and Err returns that first error. All wrapped
// operations mutate the shared dataset in place.
type Preprocessing struct {
	ds      *Dataset
	stats   *Stats
	missing *MissingValues
	scaler  *Scaler
	encoder *Encoder
	err     error
}

// NewPreprocessing validates the dataset's rectangular shape and wires
// the engine and collaborators around it. A nil logger falls back to
// slog.Default.
func NewPreprocessing(ds *Dataset, logger *slog.Logger) (*Preprocessing, error) {
	if ds == nil {
		return nil, errors.Wrap(ErrInvalidDataset, "nil dataset")
	}
	if err := ds.check(); err != nil {
		return nil, err
	}
	return &Preprocessing{
		ds:      ds,
		stats:   NewStats(ds),
		missing: NewMissingValues(ds, logger),
		scaler:  NewScaler(ds, logger),
		encoder: NewEncoder(ds, logger),
	}, nil
}

// Dataset returns the shared dataset.
func (p *Preprocessing) Dataset() *Dataset { return p.ds }

// Stats returns the statistics engine over the shared dataset.
func (p *Preprocessing) Stats() *Stats { return p.stats }

// Err returns the first error recorded by a chained step, if any.
func (p *Preprocessing) Err() error { return p.err }

// IsNA returns the rows with at least one null among the given columns.
func (p *Preprocessing) IsNA(columns ...string) (*Dataset, error) {
	return p.missing.IsNA(columns...)
}

// NotNA returns the rows with no null among the given columns.
func (p *Preprocessing) NotNA(columns ...string) (*Dataset, error) {
	return p.missing.NotNA(columns...)
}

// FillNA fills null cells per method; see MissingValues.FillNA.
func (p *Preprocessing) FillNA(method FillMethod, def Cell, columns ...string) *Preprocessing {
	if p.err != nil {
		return p
	}
	p.err = p.missing.FillNA(method, def, columns...)
	return p
}

// DropNA drops the rows with nulls in the given columns.
func (p *Preprocessing) DropNA(columns ...string) *Preprocessing {
	if p.err != nil {
		return p
	}
	p.err = p.missing.DropNA(columns...)
	return p
}

// Scale rescales the given columns with the named method.
func (p *Preprocessing) Scale(method ScaleMethod, columns ...string) *Preprocessing {
	if p.err != nil {
		return p
	}
	switch method {
	case ScaleMinMax:
		p.err = p.scaler.MinMax(columns...)
	case ScaleStandard:
		p.err = p.scaler.Standard(columns...)
	default:
		p.err = errors.Wrapf(ErrUnknownMethod, "scale method %q", method)
	}
	return p
}

// Encode encodes the given columns with the named method. Label code
// mappings are discarded here; use the Encoder directly when they are
// needed for inverse lookup.
func (p *Preprocessing) Encode(method EncodeMethod, columns ...string) *Preprocessing {
	if p.err != nil {
		return p
	}
	switch method {
	case EncodeLabel:
		_, p.err = p.encoder.Label(columns...)
	case EncodeOneHot:
		p.err = p.encoder.OneHot(columns...)
	default:
		p.err = errors.Wrapf(ErrUnknownMethod, "encode method %q", method)
	}
	return p
}

// Missing returns the missing-value processor.
func (p *Preprocessing) Missing() *MissingValues { return p.missing }

// Scaler returns the scaler.
func (p *Preprocessing) Scaler() *Scaler { return p.scaler }

// Encoder returns the encoder.
func (p *Preprocessing) Encoder() *Encoder { return p.encoder }
