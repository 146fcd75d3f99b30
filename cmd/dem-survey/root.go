package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jateonwr/dem-survey/internal/config"
)

const (
	envPrefix   = "DEM_SURVEY"
	flagConfig  = "config"
	flagEnvFile = "env-file"
	flagVerbose = "verbose"
	flagEndpt   = "endpoint"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "dem-survey",
		Short: "Fill and submit the DEM dataset survey",
		Example: `
dem-survey fill
dem-survey refdata --endpoint https://example.org/exec
dem-survey contract --operations
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "YAML or JSON config file layered over the defaults")
	flags.StringSlice(flagEnvFile, []string{".env"}, "dotenv files loaded before reading the environment")
	flags.String(flagEndpt, "", "survey endpoint URL")
	flags.BoolP(flagVerbose, "v", false, "verbose logging")
	for _, name := range []string{flagConfig, flagEnvFile, flagEndpt, flagVerbose} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	env := &environment{viper: v}
	cmd.AddCommand(
		newFillCommand(env),
		newRefDataCommand(env),
		newContractCommand(),
		newConfigCommand(env),
	)
	return cmd
}

// environment resolves configuration and logging once flags are parsed.
type environment struct {
	viper  *viper.Viper
	logger *zap.Logger
}

func (e *environment) Logger() *zap.Logger {
	if e.logger != nil {
		return e.logger
	}
	var (
		logger *zap.Logger
		err    error
	)
	if e.viper.GetBool(flagVerbose) {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		logger = zap.NewNop()
	}
	e.logger = logger
	return logger
}

// Config layers the defaults, the optional config file, dotenv files, the
// environment, and finally the endpoint flag.
func (e *environment) Config() (config.Config, error) {
	if err := config.LoadDotEnv(e.viper.GetStringSlice(flagEnvFile)...); err != nil {
		return config.Config{}, err
	}

	var (
		cfg config.Config
		err error
	)
	if path := e.viper.GetString(flagConfig); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return config.Config{}, err
	}

	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return config.Config{}, err
	}
	if endpoint := e.viper.GetString(flagEndpt); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
