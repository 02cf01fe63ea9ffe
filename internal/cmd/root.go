package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"speedtune/internal/config"
)

// NewRootCmd builds the teamcalc command tree with fresh flag sets and binds
// the flags to viper keys.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "teamcalc",
		Short: "Speed-tuning team calculator",
		Long: `teamcalc enumerates every three-unit support team from a roster,
computes the carry panel speed each team needs to reach a target number of
turns before the summon countdown fires, and lists the teams that pass the
speed and cost filters, most expensive first.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is $HOME/.config/teamcalc/config.yaml)")
	pf.String("roster", "", "roster yaml file (default is the built-in roster)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-file", "", "write logs to this file instead of stderr")
	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("roster.path", pf.Lookup("roster"))
	_ = viper.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("logging.file", pf.Lookup("log-file"))

	root.AddCommand(newEvalCmd(), newRosterCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TEAMCALC")
	// TEAMCALC_FILTER_MAX_SPEED for filter.max_speed
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}
