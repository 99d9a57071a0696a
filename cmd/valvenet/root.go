package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/valvenet/pressure"
)

const (
	envPrefix    = "VALVENET"
	defaultInput = "input.txt"
)

// options holds the resolved command-line configuration.
type options struct {
	config        string
	logLevel      string
	format        string
	singleMinutes int
	dualMinutes   int
}

// newRootCmd builds the command with its own viper instance, so repeated
// construction (tests) never shares state.
func newRootCmd() *cobra.Command {
	o := &options{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "valvenet [input]",
		Short:         "Most pressure releasable from a valve network",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfiguration(cmd, v, o.config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInput
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, o, path)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.config, "config", "", "YAML configuration file")
	f.StringVar(&o.logLevel, "loglevel", "info", "Console log level (trace, debug, info, warn, error)")
	f.StringVar(&o.format, "format", formatText, "Output format: text or json")
	f.IntVar(&o.singleMinutes, "single-minutes", pressure.SingleMinutes, "Time budget for one actor")
	f.IntVar(&o.dualMinutes, "dual-minutes", pressure.DualMinutes, "Time budget for two actors")

	return cmd
}

// loadConfiguration layers environment variables and an optional config file
// under the flags the user did not set explicitly.
func loadConfiguration(cmd *cobra.Command, v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read configuration %s", configFile)
		}
	}

	return bindFlags(cmd, v)
}

// bindFlags applies the viper value to every flag that was not set on the
// command line and for which viper has a value.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if serr := f.Value.Set(v.GetString(f.Name)); serr != nil {
			err = errors.Wrapf(serr, "configuration value for %s", f.Name)
		}
	})

	return err
}
