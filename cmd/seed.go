package cmd

import (
	"fmt"
	"strconv"

	"social-network/core/config"
	"social-network/core/database"
	"social-network/core/logger"
	"social-network/feature/seed"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with sample users, posts and comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		ctx := cmd.Context()
		db, err := database.Open(ctx, cfg.Database, logg)
		if err != nil {
			return err
		}
		defer db.Close(ctx)

		svc := newServices(db, logg)
		for _, step := range []func() error{
			func() error { return svc.users.Init(ctx) },
			func() error { return svc.posts.Init(ctx) },
			func() error { return svc.comments.Init(ctx) },
		} {
			if err := step(); err != nil {
				return err
			}
		}

		s := &seed.Seeder{Users: svc.users, Posts: svc.posts, Comments: svc.comments}
		summary, err := s.Run(ctx)
		if err != nil {
			return err
		}
		logg.Info("Database seeded", zap.String("driver", db.Driver))

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("Resource", "Created")
		table.Append([]string{"Users", strconv.Itoa(summary.Users)})
		table.Append([]string{"Posts", strconv.Itoa(summary.Posts)})
		table.Append([]string{"Comments", strconv.Itoa(summary.Comments)})
		table.Append([]string{"Tags", strconv.Itoa(summary.Tags)})
		return table.Render()
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
