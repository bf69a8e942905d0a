package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrom_Basic(t *testing.T) {
	data := "Handle,Title,Variant Price\nshirt,Shirt,12.5\nshirt,,13\n"
	records, err := ReadFrom(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "shirt", records[0].Get("Handle"))
	assert.Equal(t, "Shirt", records[0].Get("Title"))
	assert.Equal(t, "12.5", records[0].Get("Variant Price"))
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, 3, records[1].Line)
	assert.False(t, records[1].Has("Title"))
}

func TestReadFrom_RaggedRows(t *testing.T) {
	data := "A,B,C\n1\n1,2,3,4\n"
	records, err := ReadFrom(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", records[0].Get("A"))
	assert.Equal(t, "", records[0].Get("C"))
	assert.Len(t, records[1].Values, 3)
	assert.Equal(t, "3", records[1].Get("C"))
}

func TestReadFrom_QuotedMultiline(t *testing.T) {
	data := "Handle,Body (HTML)\nmug,\"<p>line one\nline two</p>\"\ncup,plain\n"
	records, err := ReadFrom(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "<p>line one\nline two</p>", records[0].Values["Body (HTML)"])
	assert.Equal(t, 4, records[1].Line)
}

func TestReadFrom_BOMAndNaN(t *testing.T) {
	data := "\ufeffHandle,Tags,Title\nmug,nan,NaN\n"
	records, err := ReadFrom(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "mug", records[0].Get("Handle"))
	assert.False(t, records[0].Has("Tags"))
	assert.Equal(t, "", records[0].Get("Title"))
	assert.Equal(t, "NaN", records[0].Values["Title"])
}

func TestReadFrom_Empty(t *testing.T) {
	records, err := ReadFrom(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("Handle\nmug\n"), 0o644))

	records, err := Read(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "mug", records[0].Get("Handle"))
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
