package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
)

// Command groups. Fixture commands support testing loaders and sit outside
// the mapping table output.
const (
	mappingGroup = "mapping"
	fixtureGroup = "fixtures"
)

var RootCmd = &cobra.Command{
	Use:   "aaschema",
	Short: "Schema utility for Adobe Analytics data feeds",
	Long: `aaschema maps the columns of an Adobe Analytics data feed to the types of
a target format (Avro or BigQuery), using the data feed column reference.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr(), verbose)
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newLogger writes console-encoded logs to w. There is no sampler: every
// unmapped column must be reported, however many a header carries.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level.SetLevel(zap.DebugLevel)
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.AddSync(w)))
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.AddGroup(
		&cobra.Group{ID: mappingGroup, Title: "Mapping Commands:"},
		&cobra.Group{ID: fixtureGroup, Title: "Test Fixture Commands:"},
	)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./aaschema.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every classification decision")
	RootCmd.PersistentFlags().String("format", "", "output format: avro or bigquery")
	RootCmd.PersistentFlags().String("tables", "", "YAML/JSON file extending the built-in reference tables")

	viper.BindPFlag("settings.format", RootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("tables.extra", RootCmd.PersistentFlags().Lookup("tables"))

	viper.SetDefault("settings.format", "avro")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("aaschema")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("aaschema")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
