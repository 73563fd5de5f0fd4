package cmd

import (
	"fmt"
	"strconv"
	"time"

	"social-network/core/config"
	"social-network/core/database"
	"social-network/core/logger"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the database connection and schema",
	Long:  `Connects to the configured database, pings it and, on SQL backends, reports which tables exist.`,
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
		start := time.Now()
		db, err := database.Open(ctx, cfg.Database, logg)
		if err != nil {
			return err
		}
		defer db.Close(ctx)
		if err := db.Ping(ctx); err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Connected to %s in %s\n", db.Driver, time.Since(start).Round(time.Millisecond))

		if db.IsMongo() {
			return nil
		}

		report, err := database.CheckSchema(db.SQL, schemaTables())
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(out)
		table.Header("Table", "Exists", "Columns")
		for _, t := range report.Tables {
			table.Append([]string{t.Table, strconv.FormatBool(t.Exists), strconv.Itoa(t.Columns)})
		}
		if err := table.Render(); err != nil {
			return err
		}
		if !report.OK() {
			fmt.Fprintf(out, "Missing tables: %v (run start or seed to create them)\n", report.Missing)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pingCmd)
}
