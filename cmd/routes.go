package cmd

import (
	"fmt"
	"io"
	"sort"

	"social-network/core/config"
	"social-network/core/database"

	"github.com/gofiber/fiber/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the HTTP routes",
	Long:  `Builds the application against an in-memory SQLite database and prints every registered route.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg.Database = database.Config{Driver: database.DriverSQLite, Name: ":memory:"}
		cfg.Storage.Enabled = false

		ctx := cmd.Context()
		db, err := database.Open(ctx, cfg.Database, nil)
		if err != nil {
			return err
		}
		defer db.Close(ctx)

		app, _, err := buildApp(ctx, cfg, zap.NewNop(), db)
		if err != nil {
			return err
		}
		return printRoutes(cmd.OutOrStdout(), app)
	},
}

func printRoutes(w io.Writer, app *fiber.App) error {
	seen := map[string]bool{}
	var rows [][]string
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead || r.Method == fiber.MethodConnect || r.Method == fiber.MethodTrace {
			continue
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, []string{r.Method, r.Path})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i][1] != rows[j][1] {
			return rows[i][1] < rows[j][1]
		}
		return rows[i][0] < rows[j][0]
	})

	table := tablewriter.NewWriter(w)
	table.Header("Method", "Path")
	for _, row := range rows {
		table.Append(row)
	}
	return table.Render()
}

func init() {
	RootCmd.AddCommand(routesCmd)
}
