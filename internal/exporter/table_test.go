package exporter

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, byRegionFrame()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "by_region_table", buf.Bytes())
}

func TestWriteTable_FrameError(t *testing.T) {
	broken := byRegionFrame().Select([]string{"missing"})
	require.Error(t, broken.Err)

	var buf bytes.Buffer
	assert.Error(t, WriteTable(&buf, broken))
	assert.Empty(t, buf.String())
}
