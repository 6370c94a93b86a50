package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_WriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		options  WriteOptions
		expected string
	}{
		{
			name: "headers and records",
			options: WriteOptions{
				Headers: []string{"name_reg", "Registered"},
				Records: [][]string{{"Alpha", "10"}, {"Beta", "20"}},
			},
			expected: "name_reg,Registered\nAlpha,10\nBeta,20\n",
		},
		{
			name: "with BOM",
			options: WriteOptions{
				Headers:   []string{"name_reg"},
				Records:   [][]string{{"Île-de-France"}},
				BOMPrefix: true,
			},
			expected: "\xef\xbb\xbfname_reg\nÎle-de-France\n",
		},
		{
			name: "quotes fields with delimiter",
			options: WriteOptions{
				Headers: []string{"name_reg"},
				Records: [][]string{{"Provence, Alpes"}},
			},
			expected: "name_reg\n\"Provence, Alpes\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			w := NewCSVWriter(nil, dir)

			require.NoError(t, w.WriteCSV("out.csv", tt.options))

			content, err := os.ReadFile(filepath.Join(dir, "out.csv"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(content))
		})
	}
}

func TestCSVWriter_WriteCSVTruncates(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, dir)
	path := filepath.Join(dir, "runs", "out.csv")

	require.NoError(t, w.WriteCSV(path, WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}, {"3", "4"}},
	}))
	require.NoError(t, w.WriteCSV(path, WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"5", "6"}},
	}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n5,6\n", string(content))
}

func TestCSVWriter_ResolvePath(t *testing.T) {
	w := NewCSVWriter(nil, "output")

	assert.Equal(t, filepath.Join("output", "x.csv"), w.resolvePath("x.csv"))
	assert.Equal(t, filepath.Join("elsewhere", "x.csv"), w.resolvePath(filepath.Join("elsewhere", "x.csv")))

	abs := filepath.Join(t.TempDir(), "x.csv")
	assert.Equal(t, abs, w.resolvePath(abs))
	assert.Equal(t, "x.csv", NewCSVWriter(nil, "").resolvePath("x.csv"))
}

func TestCSVWriter_WriteFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "by_region.csv")

	require.NoError(t, NewCSVWriter(nil, dir).WriteFrame(path, byRegionFrame(), false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "by_region_csv", content)
}

func TestCSVWriter_WriteFrameTwiceIsIdentical(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, dir)

	require.NoError(t, w.WriteFrame("first.csv", byRegionFrame(), true))
	require.NoError(t, w.WriteFrame("second.csv", byRegionFrame(), true))

	first, err := os.ReadFile(filepath.Join(dir, "first.csv"))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "second.csv"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
