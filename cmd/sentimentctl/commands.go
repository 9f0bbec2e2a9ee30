package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/source"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/insight"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/config"
)

func (c *cli) newInsightsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Classify every cluster and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.insightService(cmd.Context())
			if err != nil {
				return err
			}
			insights, err := svc.Insights(cmd.Context(), insight.Filter{Category: entities.Category(category)})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, insights, insightsTable(insights))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only show clusters in this category")
	return cmd
}

func (c *cli) newAggregateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate",
		Short: "Print corpus-wide, count weighted sentiment per platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.insightService(cmd.Context())
			if err != nil {
				return err
			}
			agg, err := svc.Aggregate(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, agg, aggregateTable(agg))
		},
	}
}

func (c *cli) newDeltaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delta <cluster-id> <discord|teams>",
		Short: "Print a competitor's sentiment relative to Slack on one cluster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, ok := entities.ParsePlatform(args[1])
			if !ok {
				return fmt.Errorf("%w: %q", entities.ErrInvalidPlatform, args[1])
			}
			svc, err := c.insightService(cmd.Context())
			if err != nil {
				return err
			}
			delta, err := svc.Delta(cmd.Context(), args[0], platform)
			if err != nil {
				return err
			}
			out := map[string]string{"cluster_id": args[0], "platform": string(platform), "delta": delta}
			return render(cmd.OutOrStdout(), c.output, out, func(tw *tabwriter.Writer) error {
				_, err := fmt.Fprintf(tw, "%s vs Slack on cluster %s:\t%s\n", platform.DisplayName(), args[0], delta)
				return err
			})
		},
	}
}

func (c *cli) newVennCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "venn",
		Short: "Print cluster and comment totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.insightService(cmd.Context())
			if err != nil {
				return err
			}
			regions, err := svc.Venn(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, regions, vennTable(regions))
		},
	}
}

func (c *cli) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "Rank platforms by overall sentiment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.sentimentService()
			if err != nil {
				return err
			}
			board, err := svc.Leaderboard(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, board, func(tw *tabwriter.Writer) error {
				fmt.Fprintln(tw, "RANK\tPLATFORM\tSENTIMENT\tCHANGE")
				for _, e := range board {
					fmt.Fprintf(tw, "%d\t%s\t%d\t%+d%%\n", e.Rank, e.Name, e.OverallSentiment, e.SentimentChange)
				}
				return nil
			})
		},
	}
}

func (c *cli) newPublishCmd() *cobra.Command {
	var object string
	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Validate a clustering document and upload it to object storage",
		Long: `publish parses the document, uploads it, and overwrites the shared Redis
document cache entry (CACHE_KIND=redis) so API replicas started afterwards
read the new document instead of a cached one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			result, err := source.Parse(raw)
			if err != nil {
				return fmt.Errorf("refusing to publish %s: %w", filepath.Base(args[0]), err)
			}
			if object == "" {
				object = c.cfg.Source.Object
			}

			store, err := c.openStore(cmd.Context(), &c.cfg.Storage)
			if err != nil {
				return err
			}
			if err := store.UploadJSON(cmd.Context(), object, raw); err != nil {
				return err
			}
			if err := c.refreshCache(cmd.Context(), object, raw); err != nil {
				return fmt.Errorf("uploaded %s but could not refresh the document cache: %w", object, err)
			}

			c.logger.Info("clustering document published",
				zap.String("bucket", store.Bucket()),
				zap.String("object", object),
				zap.Int("clusters", len(result.Clusters)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "published %d clusters to %s/%s\n", len(result.Clusters), store.Bucket(), object)
			return nil
		},
	}
	cmd.Flags().StringVar(&object, "object", "", "object name (default from SOURCE_OBJECT)")
	return cmd
}

// refreshCache overwrites the shared cache entry for object. The memory cache
// lives and dies with this process, so there is nothing to refresh.
func (c *cli) refreshCache(ctx context.Context, object string, raw []byte) error {
	if c.cfg.Cache.Kind != config.CacheRedis {
		return nil
	}
	docCache, err := c.openCache(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = docCache.Close() }()
	return docCache.Set(ctx, object, raw)
}

func (c *cli) newObjectsCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "objects",
		Short: "List clustering documents in object storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("prefix") {
				prefix = objectPrefix(c.cfg.Source.Object)
			}
			store, err := c.openStore(cmd.Context(), &c.cfg.Storage)
			if err != nil {
				return err
			}
			objects, err := store.ListObjects(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, objects, func(tw *tabwriter.Writer) error {
				fmt.Fprintln(tw, "KEY\tSIZE\tMODIFIED\tACTIVE")
				for _, o := range objects {
					active := ""
					if o.Key == c.cfg.Source.Object {
						active = "*"
					}
					fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", o.Key, o.Size, o.LastModified.Format(time.RFC3339), active)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix (default: the directory of SOURCE_OBJECT)")
	return cmd
}

// objectPrefix returns the directory part of an object key, with its trailing slash
func objectPrefix(object string) string {
	dir := path.Dir(object)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir + "/"
}

func insightsTable(insights []entities.ComparisonInsight) textRenderer {
	return func(tw *tabwriter.Writer) error {
		fmt.Fprintln(tw, "CLUSTER\tCATEGORY\tSIZE\tLABEL\tSUMMARY")
		for _, in := range insights {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", in.ClusterID, in.Category, in.Size, in.Label, in.Summary)
		}
		return nil
	}
}

func aggregateTable(agg *entities.PlatformAggregate) textRenderer {
	return func(tw *tabwriter.Writer) error {
		fmt.Fprintln(tw, "PLATFORM\tAVG SENTIMENT")
		for _, p := range entities.Platforms {
			fmt.Fprintf(tw, "%s\t%.3f\n", p.DisplayName(), agg.PerPlatformAverage[p])
		}
		fmt.Fprintf(tw, "\ncomments: %d\tclusters: %d\n", agg.TotalComments, agg.TotalClusters)
		return nil
	}
}

func vennTable(regions []entities.VennRegion) textRenderer {
	return func(tw *tabwriter.Writer) error {
		fmt.Fprintln(tw, "CATEGORY\tCLUSTERS\tCOMMENTS\tCOLOR")
		for _, r := range regions {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Category, r.ClusterCount, r.CommentCount, r.Color)
		}
		return nil
	}
}
