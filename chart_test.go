package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFrequencyChart(t *testing.T) {
	stats := NewStats(foodDataset(t))

	var buf bytes.Buffer
	err := WriteFrequencyChart(&buf, stats, "category", "categories")
	require.NoError(t, err)

	// PNG signature.
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestWriteFrequencyChartErrors(t *testing.T) {
	stats := NewStats(foodDataset(t))

	var buf bytes.Buffer
	err := WriteFrequencyChart(&buf, stats, "vitamin", "missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Zero(t, buf.Len())
}
