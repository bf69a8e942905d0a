// Command pricebook renders the catalog export in inputs/ as an xlsx price
// list in outputs/.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javajack/pricebook/internal/config"
	"github.com/javajack/pricebook/internal/logging"
	"github.com/javajack/pricebook/internal/pricebook"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		envFiles   []string
		outputDir  string
	)

	cmd := &cobra.Command{
		Use:           "pricebook",
		Short:         "Generate a wholesale price list from a catalog export",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := config.LoadEnv(envFiles...)
			if configPath != "" {
				env.ConfigPath = configPath
			}
			if outputDir != "" {
				env.OutputDir = outputDir
			}
			return run(cmd.Context(), env)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings file (default $PRICEBOOK_CONFIG or config.json)")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the generated price list")
	return cmd
}

func run(ctx context.Context, env *config.Env) error {
	logger, err := logging.New(env.LogLevel, env.LogEncoding)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		return err
	}
	logger.Info("loaded settings", zap.String("path", env.ConfigPath), zap.String("company", cfg.CompanyName))

	gen := pricebook.New(cfg,
		pricebook.WithProductDir(env.ProductDir),
		pricebook.WithTranslationDir(env.TranslationDir),
		pricebook.WithOutputDir(env.OutputDir),
		pricebook.WithScratchDir(env.ScratchDir),
		pricebook.WithImageTimeout(env.ImageTimeout),
		pricebook.WithLogger(logger),
	)
	out, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Price book generated successfully: %s\n", out)
	return nil
}
