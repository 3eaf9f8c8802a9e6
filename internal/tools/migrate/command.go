package migrate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sandeepkv93/lost-and-found-backend/internal/config"
	"github.com/sandeepkv93/lost-and-found-backend/internal/database"
	"github.com/sandeepkv93/lost-and-found-backend/internal/di"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/tools/common"
	"github.com/sandeepkv93/lost-and-found-backend/internal/tools/ui"
)

type options struct {
	envFile string
	timeout time.Duration
	ci      bool
	seed    bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tooling",
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")

	cmd.AddCommand(
		newUpCommand(opts),
		newStatusCommand(opts),
		newPlanCommand(opts),
	)
	return cmd
}

func newUpCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(opts, "migrate up", func(ctx context.Context) ([]string, error) {
				if err := common.LoadEnvFile(opts.envFile); err != nil {
					return nil, err
				}
				runner, err := di.InitializeMigrationRunner()
				if err != nil {
					return nil, err
				}
				defer func() { _ = runner.Close() }()
				return runner.Run(opts.seed)
			})
		},
	}
	cmd.Flags().BoolVar(&opts.seed, "seed", false, "insert demo owners and items after migrating")
	return cmd
}

func newStatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check migration prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(opts, "migrate status", func(ctx context.Context) ([]string, error) {
				cfg, db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				sqlDB, _ := db.DB()
				defer func() { _ = sqlDB.Close() }()
				if err := sqlDB.PingContext(ctx); err != nil {
					return nil, fmt.Errorf("db ping: %w", err)
				}
				details := []string{"database reachable", "driver: " + cfg.DatabaseDriver}
				for _, model := range database.Models() {
					state := "missing"
					if db.Migrator().HasTable(model) {
						state = "present"
					}
					details = append(details, fmt.Sprintf("table %T: %s", model, state))
				}
				return details, nil
			})
		},
	}
}

func newPlanCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show migration plan (dry-run)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(opts, "migrate plan", func(ctx context.Context) ([]string, error) {
				_, db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				sqlDB, _ := db.DB()
				defer func() { _ = sqlDB.Close() }()
				if err := sqlDB.PingContext(ctx); err != nil {
					return nil, fmt.Errorf("db ping: %w", err)
				}
				return []string{
					"would apply AutoMigrate for domain models",
					"users (unique email), owners, lost_items (owner_id index)",
					"no mutation executed in plan mode",
				}, nil
			})
		},
	}
}

// execute runs fn and exits with status 3 on failure so CI can tell tool
// errors from usage errors.
func execute(opts *options, title string, fn func(context.Context) ([]string, error)) error {
	details, err := run(opts, title, fn)
	if opts.ci {
		common.PrintCIResult(err == nil, title, details, err)
	}
	if err != nil {
		os.Exit(3)
	}
	return nil
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) (details []string, err error) {
	start := time.Now()
	defer func() { recordCommand(title, start, err) }()
	if opts.ci {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()
		return fn(ctx)
	}
	return ui.Run(title, fn)
}

func recordCommand(title string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	command := strings.TrimPrefix(title, "migrate ")
	observability.RecordToolCommandRun(context.Background(), "migrate", command, outcome)
	observability.RecordToolCommandDuration(context.Background(), "migrate", command, outcome, time.Since(start))
}

func loadConfigDB(envFile string) (*config.Config, *gorm.DB, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
