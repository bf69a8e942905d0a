package pricebook

import (
	"time"

	"go.uber.org/zap"
)

// Options holds configuration for the Generator.
type Options struct {
	productDir     string
	translationDir string
	outputDir      string
	scratchDir     string
	imageTimeout   time.Duration
	fetcher        ImageFetcher
	logger         *zap.Logger
	now            func() time.Time
}

func defaultOptions() *Options {
	return &Options{
		productDir:     "inputs/shopify_product_csv",
		translationDir: "inputs/shopify_translate_csv",
		outputDir:      "outputs",
		scratchDir:     "temp",
		imageTimeout:   10 * time.Second,
		logger:         zap.NewNop(),
		now:            time.Now,
	}
}

// Option configures the Generator.
type Option func(*Options)

// WithProductDir sets the directory searched for the catalog export.
func WithProductDir(dir string) Option {
	return func(o *Options) { o.productDir = dir }
}

// WithTranslationDir sets the directory searched for the translation export.
func WithTranslationDir(dir string) Option {
	return func(o *Options) { o.translationDir = dir }
}

// WithOutputDir sets where the price list is written (default: "outputs").
func WithOutputDir(dir string) Option {
	return func(o *Options) { o.outputDir = dir }
}

// WithScratchDir sets where thumbnails are staged before embedding (default: "temp").
func WithScratchDir(dir string) Option {
	return func(o *Options) { o.scratchDir = dir }
}

// WithImageTimeout sets the per-request timeout of the default image fetcher.
func WithImageTimeout(d time.Duration) Option {
	return func(o *Options) { o.imageTimeout = d }
}

// WithImageFetcher replaces the HTTP image fetcher.
func WithImageFetcher(f ImageFetcher) Option {
	return func(o *Options) { o.fetcher = f }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source used to name the output file.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.now = now }
}
