package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/wandler/pkg/core/config"
	"github.com/msto63/wandler/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "wandler",
	Short: "wandler - naming convention converter",
	Long: `wandler converts text between naming conventions and builds SQL lists.

Transforms are grouped in four tabs:
  misc   - delimiters, camelCase, PascalCase, UPPER_SNAKE, URL coding
  case   - upper, lower, initial caps, title case
  sql    - comma lists and IN clauses from one value per line
  regex  - find and replace with a regular expression

Every change can be undone in the interactive UI (ctrl+z) and over the
websocket session protocol ("undo").`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./wandler.toml or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setup loads the configuration and installs the process-wide logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if err := appConfig.ApplyEnv(); err != nil {
		return err
	}
	if verbose {
		appConfig.General.LogLevel = "debug"
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	logCfg := logging.LoggerConfig{
		ServiceName: "wandler",
		Level:       appConfig.General.LogLevel,
		Format:      appConfig.General.LogFormat,
		File:        appConfig.General.LogFile,
		Output:      cmd.ErrOrStderr(),
		Caller:      verbose,
	}
	// The terminal UI owns the screen
	if cmd.Name() == "tui" && logCfg.File == "" {
		logCfg.Output = io.Discard
	}

	logCloser, err = logging.Setup(logCfg)
	return err
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
