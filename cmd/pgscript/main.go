package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/pgscript/internal/cli"
	"github.com/cybertec-postgresql/pgscript/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

// connectionFlags are shared by every command that talks to the database
func connectionFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "connection",
			Aliases: []string{"c"},
			Usage:   "PostgreSQL connection string (URI or key=value format). Supports standard PG* environment variables.",
		},
		&urfavecli.StringFlag{
			Name:  "config",
			Usage: "Path to a TOML config file",
		},
		&urfavecli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug output",
		},
	}
}

func main() {
	app := &urfavecli.Command{
		Name:    "pgscript",
		Usage:   "Execute multi-statement SQL scripts with per-statement transaction routing",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "exec",
				Usage:     "Execute a script file",
				ArgsUsage: "<script.sql>",
				Action:    execCommand,
				Flags: append(connectionFlags(),
					&urfavecli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-script timeout",
					},
					&urfavecli.Int64Flag{
						Name:  "row-limit",
						Usage: "Maximum rows a single query may return",
					},
				),
			},
			{
				Name:   "objects",
				Usage:  "List tables and views with their columns",
				Action: objectsCommand,
				Flags:  connectionFlags(),
			},
			{
				Name:   "complete",
				Usage:  "Print completion items (keywords and schema objects)",
				Action: completeCommand,
				Flags:  connectionFlags(),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration from defaults, an optional
// config file, and command-line flags, in that precedence order.
func loadConfig(cmd *urfavecli.Command) (*cli.Config, error) {
	config := cli.DefaultConfig

	if path := cmd.String("config"); path != "" {
		if err := cli.LoadConfigFile(&config, path); err != nil {
			return nil, err
		}
	}

	cli.ApplyFlagsToConfig(&config,
		cmd.String("connection"), cmd.Duration("timeout"),
		cmd.Int64("row-limit"), cmd.Bool("verbose"))

	logger.SetVerbose(config.Verbose)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// execCommand handles 'pgscript exec'
func execCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	scriptPath := cmd.Args().First()
	if scriptPath == "" {
		return fmt.Errorf("usage: pgscript exec <script.sql>")
	}

	exitCode, err := cli.Exec(ctx, config, scriptPath)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// objectsCommand handles 'pgscript objects'
func objectsCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exitCode, err := cli.Objects(ctx, config)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// completeCommand handles 'pgscript complete'
func completeCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exitCode, err := cli.Complete(ctx, config)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}
