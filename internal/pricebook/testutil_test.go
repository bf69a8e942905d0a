package pricebook

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const productHeader = "Handle,Title,Vendor,Type,Tags,Published,Image Src,Image Position,Image Alt Text," +
	"Variant SKU,Variant Price,Variant Compare At Price,Option1 Name,Option1 Value,Option2 Name,Option2 Value\n"

const translationHeader = "Type,Identification,Field,Locale,Default content,Translated content\n"

// createTestPNG generates a solid w x h PNG.
func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// stubFetcher serves images from memory and records requested URLs.
type stubFetcher struct {
	images map[string][]byte
	calls  []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	s.calls = append(s.calls, url)
	data, ok := s.images[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

// workspace is a temporary input/output layout for one generator run.
type workspace struct {
	productDir     string
	translationDir string
	outputDir      string
	scratchDir     string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	root := t.TempDir()
	ws := workspace{
		productDir:     filepath.Join(root, "inputs", "shopify_product_csv"),
		translationDir: filepath.Join(root, "inputs", "shopify_translate_csv"),
		outputDir:      filepath.Join(root, "outputs"),
		scratchDir:     filepath.Join(root, "temp"),
	}
	require.NoError(t, os.MkdirAll(ws.productDir, 0o755))
	return ws
}

func (ws workspace) writeProducts(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(ws.productDir, "products_export.csv")
	require.NoError(t, os.WriteFile(path, []byte(productHeader+body), 0o644))
}

func (ws workspace) writeTranslations(t *testing.T, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ws.translationDir, 0o755))
	path := filepath.Join(ws.translationDir, "translations.csv")
	require.NoError(t, os.WriteFile(path, []byte(translationHeader+body), 0o644))
}

func (ws workspace) options(fetcher ImageFetcher) []Option {
	return []Option{
		WithProductDir(ws.productDir),
		WithTranslationDir(ws.translationDir),
		WithOutputDir(ws.outputDir),
		WithScratchDir(ws.scratchDir),
		WithImageFetcher(fetcher),
		WithClock(fixedClock),
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

// openOutput opens a generated workbook and closes it when the test ends.
func openOutput(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(SheetName, cell)
	require.NoError(t, err)
	return v
}

func mergedRanges(t *testing.T, f *excelize.File) []string {
	t.Helper()
	merges, err := f.GetMergeCells(SheetName)
	require.NoError(t, err)
	var out []string
	for _, m := range merges {
		out = append(out, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	return out
}

func scratchEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
