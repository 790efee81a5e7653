package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/leadboard-backend/config"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/seed"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/storage/postgres"
)

func newDBCommand() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database administration",
	}
	dbCmd.AddCommand(newDBCreateCommand())
	return dbCmd
}

func newDBCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Drop, recreate and seed the board tables",
		Long: `Drop both board tables, recreate them and load the demo board.

All existing columns and leads are lost. The whole operation runs in one
transaction, so a failure leaves the previous data untouched.

Examples:
  # Ask before dropping
  leadboard db create

  # Skip confirmation
  leadboard db create --yes`,
		Args: cobra.NoArgs,
		RunE: runDBCreate,
	}

	cmd.Flags().Bool("yes", false, "Skip confirmation")
	cmd.Flags().String("url", "", "database connection URL (default: from DB_DSN or DB_* settings)")

	return cmd
}

func runDBCreate(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	url, _ := cmd.Flags().GetString("url")

	out := cmd.OutOrStdout()
	if !yes && !confirm(cmd.InOrStdin(), out, "This drops every column and lead. Continue? (y/N): ") {
		fmt.Fprintln(out, "Cancelled")
		return nil
	}

	if url == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		url = postgres.DSN(&cfg.Database)
	}

	fixture, err := seed.Default()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: url, MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	res, err := seed.Run(ctx, pool, fixture)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	fmt.Fprintf(out, "Created %d columns and %d leads\n", res.Columns, res.Leads)
	fmt.Fprintln(out, "Database tables created and populated!")
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
