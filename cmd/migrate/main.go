// migrate applies the SQL files under migrations/ with atlas.
//
// Usage:
//
//	migrate apply [--dir migrations] [--dry-run]
//	migrate status [--dir migrations]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fablab-billing/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "migrate",
		Usage: "Apply database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Value:   "migrations",
				Usage:   "Migration directory",
				EnvVars: []string{"MIGRATIONS_DIR"},
			},
			&cli.StringFlag{
				Name:    "atlas-bin",
				Value:   "atlas",
				Usage:   "Path to the atlas binary",
				EnvVars: []string{"ATLAS_BIN"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "apply",
				Usage: "Apply pending migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dry-run", Usage: "Print pending statements without executing them"},
				},
				Action: runApply,
			},
			{
				Name:   "status",
				Usage:  "Show the migration status of the database",
				Action: runStatus,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(c *cli.Context) (*atlasexec.Client, func(), string, error) {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return nil, nil, "", err
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(c.String("dir"))),
	)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load migration directory: %w", err)
	}
	cleanup := func() {
		if cerr := workdir.Close(); cerr != nil {
			slog.Warn("failed to remove atlas working dir", "error", cerr.Error())
		}
	}

	client, err := atlasexec.NewClient(workdir.Path(), c.String("atlas-bin"))
	if err != nil {
		cleanup()
		return nil, nil, "", fmt.Errorf("failed to initialize atlas client: %w", err)
	}
	return client, cleanup, dbCfg.BuildDSN(), nil
}

func runApply(c *cli.Context) error {
	client, cleanup, dsn, err := newClient(c)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: c.Bool("dry-run"),
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "version", f.Version, "description", f.Description)
	}
	slog.Info("migrations up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}

func runStatus(c *cli.Context) error {
	client, cleanup, dsn, err := newClient(c)
	if err != nil {
		return err
	}
	defer cleanup()

	status, err := client.MigrateStatus(context.Background(), &atlasexec.MigrateStatusParams{URL: dsn})
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	fmt.Printf("status:  %s\ncurrent: %s\nnext:    %s\npending: %d\n", status.Status, status.Current, status.Next, len(status.Pending))
	return nil
}
