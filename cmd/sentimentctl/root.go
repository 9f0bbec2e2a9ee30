package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/repository"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/app"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/dataset"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/storage"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/insight"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/sentiment"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/config"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/logger"
)

// cli carries the persistent flags shared by every subcommand
type cli struct {
	source  string
	output  string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger

	openStore func(ctx context.Context, cfg *config.StorageConfig) (objectStore, error)
	openCache func(ctx context.Context, cfg *config.Config) (repositories.DocumentCache, error)
}

// objectStore is the part of the MinIO client the CLI needs
type objectStore interface {
	Bucket() string
	UploadJSON(ctx context.Context, objectName string, content []byte) error
	ListObjects(ctx context.Context, prefix string) ([]storage.ObjectInfo, error)
}

func openMinIO(ctx context.Context, cfg *config.StorageConfig) (objectStore, error) {
	client, err := storage.NewMinIOClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&cli{openStore: openMinIO, openCache: app.NewDocumentCache})
}

func newRootCmdWith(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "sentimentctl",
		Short: "Inspect precomputed platform sentiment and derived cluster insights",
		Long: `sentimentctl reads the bundled sentiment dataset and a clustering document
and prints derived comparison insights, aggregates and deltas.

--source selects the clustering document: "embedded" (default), "minio",
or a path to a local JSON file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init()
		},
	}

	root.PersistentFlags().StringVarP(&c.source, "source", "s", "", `clustering document: "embedded", "minio" or a file path (default from SOURCE_KIND)`)
	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "output format: json, yaml or text")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		c.newInsightsCmd(),
		c.newAggregateCmd(),
		c.newDeltaCmd(),
		c.newVennCmd(),
		c.newPlatformsCmd(),
		c.newPublishCmd(),
		c.newObjectsCmd(),
	)
	return root
}

func (c *cli) init() error {
	switch c.output {
	case outputJSON, outputYAML, outputText:
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml or text)", c.output)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	switch c.source {
	case "":
	case config.SourceEmbedded, config.SourceMinIO:
		cfg.Source.Kind = c.source
	default:
		cfg.Source.Kind = config.SourceFile
		cfg.Source.Path = c.source
	}
	c.cfg = cfg

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.logger, err = logger.New("development", level)
	return err
}

// insightService loads the clustering document once for this invocation
func (c *cli) insightService(ctx context.Context) (*insight.Service, error) {
	src, closeSource, err := app.BuildSource(ctx, c.cfg, c.logger)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeSource() }()

	repo, err := repository.LoadClusterRepository(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}
	return insight.NewService(repo), nil
}

func (c *cli) sentimentService() (*sentiment.Service, error) {
	data, err := dataset.Load()
	if err != nil {
		return nil, err
	}
	return sentiment.NewService(repository.NewSentimentRepository(data)), nil
}
