package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPipeline(t *testing.T) {
	doc := `
steps:
  - op: fillna
    method: median
    columns: [calories]
  - op: fillna
    method: default_value
    default: 0.5
    columns: [price]
  - op: scale
    method: standard
    columns: [calories, price]
  - op: encode
    method: oneHot
    columns: [category]
`
	p, err := LoadPipeline(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, p.Steps, 4)
	assert.Equal(t, "fillna", p.Steps[0].Op)
	assert.Equal(t, "median", p.Steps[0].Method)
	require.NotNil(t, p.Steps[1].Default)
	assert.Equal(t, Num(0.5), p.Steps[1].Default.Cell)

	ds := foodDataset(t)
	pp, err := NewPreprocessing(ds, nil)
	require.NoError(t, err)
	require.NoError(t, p.Run(pp))

	assert.False(t, ds.Has("category"))
	assert.True(t, ds.Has("category_grain"))
	price, err := ds.Column("price")
	require.NoError(t, err)
	for _, c := range price {
		assert.True(t, c.IsNumber())
	}
}

func TestLoadPipelineTokenDefault(t *testing.T) {
	doc := `
steps:
  - op: fillna
    method: default_value
    default: unknown
    columns: [category]
`
	p, err := LoadPipeline(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, Tok("unknown"), p.Steps[0].Default.Cell)
}

func TestLoadPipelineErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no steps", doc: "steps: []"},
		{name: "unknown op", doc: "steps:\n  - op: transpose"},
		{name: "missing op", doc: "steps:\n  - method: mean"},
		{name: "unknown field", doc: "steps:\n  - op: dropna\n    parallel: true"},
		{name: "not yaml", doc: "steps: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPipeline(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidPipeline)
		})
	}
}

// Method defaults mirror the direct API: fillna→mean, scale→minMax,
// encode→label.
func TestPipelineDefaults(t *testing.T) {
	doc := `
steps:
  - op: fillna
    columns: [calories]
  - op: scale
    columns: [calories]
  - op: encode
    columns: [category]
`
	p, err := LoadPipeline(strings.NewReader(doc))
	require.NoError(t, err)

	ds := foodDataset(t)
	pp, err := NewPreprocessing(ds, nil)
	require.NoError(t, err)
	require.NoError(t, p.Run(pp))

	calories, err := ds.Column("calories")
	require.NoError(t, err)
	for _, c := range calories {
		require.True(t, c.IsNumber())
		assert.GreaterOrEqual(t, c.Float(), 0.0)
		assert.LessOrEqual(t, c.Float(), 1.0)
	}

	category, err := ds.Column("category")
	require.NoError(t, err)
	assert.Equal(t, Num(1), category[0], "fruit label-encodes to 1")
}

func TestPipelineRunReportsFailingStep(t *testing.T) {
	doc := `
steps:
  - op: dropna
  - op: scale
    method: robust
`
	p, err := LoadPipeline(strings.NewReader(doc))
	require.NoError(t, err)

	pp, err := NewPreprocessing(foodDataset(t), nil)
	require.NoError(t, err)

	err = p.Run(pp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Contains(t, err.Error(), "step 2")
}
