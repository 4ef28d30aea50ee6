// Package cli holds the tocgen command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/tocgen/internal/config"
	"github.com/dgallion1/tocgen/internal/pipeline"
	"github.com/dgallion1/tocgen/internal/version"
	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagOut         string
	flagLogLevel    string
	flagConcurrency int
)

var rootCmd = &cobra.Command{
	Use:   "tocgen",
	Short: "Generate a table of contents page for a multi-chapter book",
	Long: `tocgen reads the chapters listed in a book config, collects their headings,
gives every heading a unique anchor and writes a single toc.html with front
matter, navigation and the chapters themselves.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	env := config.Load()

	rootCmd.Version = version.Resolved()
	rootCmd.SetVersionTemplate(fmt.Sprintf("tocgen %s\n", version.String()))

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", env.BookPath, "Book config file (env TOCGEN_BOOK)")
	pf.StringVar(&flagLogLevel, "log-level", env.LogLevel.String(), "Log level: debug, info, warn, error (env TOCGEN_LOG_LEVEL)")
	pf.IntVar(&flagConcurrency, "concurrency", env.LoadConcurrency, "Chapters read in parallel (env TOCGEN_LOAD_CONCURRENCY)")
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func newLogger() (*slog.Logger, error) {
	lvl, err := config.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// newPipeline loads the book named by --config.
func newPipeline(outDir string) (*pipeline.Pipeline, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}
	book, err := config.LoadBook(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pipeline.ErrConfig, err)
	}
	return pipeline.New(book, nil, log, pipeline.Options{
		LoadConcurrency: flagConcurrency,
		OutputDir:       outDir,
	}), nil
}
