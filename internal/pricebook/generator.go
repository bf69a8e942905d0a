// Package pricebook renders a catalog export as a grouped xlsx price list.
package pricebook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/javajack/pricebook/internal/catalog"
	"github.com/javajack/pricebook/internal/config"
	"github.com/javajack/pricebook/internal/translation"
)

// ErrNoProductTable is returned when the product directory holds no export.
var ErrNoProductTable = errors.New("no product export found")

// Generator loads the exports and writes one price list per call.
type Generator struct {
	cfg  *config.Config
	opts *Options
}

// New creates a Generator with the given settings and options.
func New(cfg *config.Config, opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.fetcher == nil {
		o.fetcher = NewHTTPFetcher(o.imageTimeout)
	}
	if cfg == nil {
		cfg, _ = config.Parse(nil)
	}
	return &Generator{cfg: cfg, opts: o}
}

// OutputPath returns the file the generator writes when run at the
// current clock time.
func (g *Generator) OutputPath() string {
	name := "pricebook_" + g.opts.now().Format("20060102_150405") + ".xlsx"
	return filepath.Join(g.opts.outputDir, name)
}

// Generate builds the price list and returns the path it was written to.
// Scratch images are removed after a successful save only.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	log := g.opts.logger

	productPath, err := firstCSV(g.opts.productDir)
	if err != nil {
		return "", err
	}
	if productPath == "" {
		return "", fmt.Errorf("%w in %s", ErrNoProductTable, g.opts.productDir)
	}

	log.Info("loading catalog", zap.String("path", productPath))
	cat, err := catalog.Load(productPath, log)
	if err != nil {
		return "", err
	}
	translations := g.loadTranslations()

	pricer, err := NewPricer(g.cfg.PriceExpression, log)
	if err != nil {
		return "", err
	}
	scratch := newScratchFiles(g.opts.scratchDir, log)

	b, err := NewBuilder(g.cfg, translations, pricer, g.opts.fetcher, scratch, log)
	if err != nil {
		return "", err
	}
	defer b.Close()

	row, err := b.AddHeader(0)
	if err != nil {
		return "", fmt.Errorf("add header: %w", err)
	}

	groups := g.selectGroups(cat.GroupByTag())
	log.Info("found product groups", zap.Int("groups", len(groups)))
	for _, grp := range groups {
		log.Info("adding section", zap.String("tag", grp.Tag), zap.Int("products", len(grp.Products)))
		if row, err = b.AddSection(ctx, grp, row); err != nil {
			return "", fmt.Errorf("add section %q: %w", grp.Tag, err)
		}
	}

	if err := os.MkdirAll(g.opts.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	out := g.OutputPath()
	log.Info("saving price list", zap.String("path", out))
	if err := b.SaveAs(out); err != nil {
		return "", err
	}
	scratch.Cleanup()

	log.Info("price list generated", zap.String("path", out))
	return out, nil
}

// loadTranslations returns nil when no usable translation export exists.
func (g *Generator) loadTranslations() *translation.Table {
	log := g.opts.logger
	path, err := firstCSV(g.opts.translationDir)
	if err != nil || path == "" {
		log.Warn("no translation export, using default names only", zap.String("dir", g.opts.translationDir))
		return nil
	}
	tbl, err := translation.Load(path)
	if err != nil {
		log.Warn("could not load translations, using default names only", zap.String("path", path), zap.Error(err))
		return nil
	}
	log.Info("loaded translations",
		zap.String("path", path),
		zap.Int("entries", tbl.Len()),
		zap.Strings("locales", tbl.AvailableLocales()),
	)
	return tbl
}

// selectGroups applies the target_tag filter. When no listed tag exists
// every group is kept.
func (g *Generator) selectGroups(groups catalog.Groups) catalog.Groups {
	if len(g.cfg.TargetTags) == 0 {
		return groups
	}
	filtered := groups.Filter(g.cfg.TargetTags)
	if len(filtered) == 0 {
		g.opts.logger.Warn("no products found with target tags, rendering all groups",
			zap.Strings("target_tags", g.cfg.TargetTags))
		return groups
	}
	return filtered
}

// firstCSV returns the lexically first *.csv file in dir, or "" if none.
func firstCSV(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return "", fmt.Errorf("search %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return matches[0], nil
}
