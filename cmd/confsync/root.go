package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trufnetwork/confsync/config"
	"github.com/trufnetwork/confsync/internal/store"
)

// cli carries what every subcommand needs. It is filled in by the root
// command's PersistentPreRunE.
type cli struct {
	verbose  bool
	settings config.Settings
	// newStore opens the parameter store for the loaded settings.
	newStore func(config.Settings) (store.ParameterStore, error)
}

func rootCmd() *cobra.Command {
	return newRootCmd(&cli{newStore: newSSMStore})
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "confsync",
		Short: "Render config files from templates and SSM parameters",
		Long: `confsync keeps <<PLACEHOLDER>> based config templates in sync with AWS SSM
Parameter Store. Without a subcommand it runs "retrieve" followed by "parse".

Settings are read from the environment (AWS_REGION, CONFSYNC_*).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		RunE: c.runPipeline,
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "development logging at debug level")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Retrieve parameters, then render the templates",
			Args:  cobra.NoArgs,
			RunE:  c.runPipeline,
		},
		&cobra.Command{
			Use:   "retrieve",
			Short: "Fetch the configured parameters into the snapshot file",
			Args:  cobra.NoArgs,
			RunE:  c.runRetrieve,
		},
		&cobra.Command{
			Use:     "parse",
			Aliases: []string{"render"},
			Short:   "Render the templates from the snapshot file",
			Args:    cobra.NoArgs,
			RunE:    c.runRender,
		},
		&cobra.Command{
			Use:     "create",
			Aliases: []string{"publish"},
			Short:   "Put every record of the variables file into the parameter store",
			Args:    cobra.NoArgs,
			RunE:    c.runPublish,
		},
		&cobra.Command{
			Use:     "find",
			Aliases: []string{"scan"},
			Short:   "Track the placeholder tokens found in the templates",
			Args:    cobra.NoArgs,
			RunE:    c.runScan,
		},
		&cobra.Command{
			Use:   "paths",
			Short: "Print the parameter paths built from the replacements file",
			Args:  cobra.NoArgs,
			RunE:  c.runPaths,
		},
	)

	return root
}

func (c *cli) setup() error {
	settings, err := config.GetEnvironmentVariables[config.Settings]()
	if err != nil {
		return errors.Wrap(err, "reading settings from environment")
	}
	c.settings = settings

	return setupLogger(settings.LogLevel, c.verbose)
}

func setupLogger(level string, verbose bool) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func (c *cli) replacements() (config.Replacements, error) {
	return config.LoadReplacements(c.settings.ReplacementsPath)
}

func (c *cli) store() (store.ParameterStore, error) {
	return c.newStore(c.settings)
}

func newSSMStore(settings config.Settings) (store.ParameterStore, error) {
	return store.NewSSMStore(store.SSMStoreOptions{
		Region:       settings.Region,
		Endpoint:     settings.SSMEndpoint,
		RetryTimeout: settings.RetryTimeout,
	})
}
