package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/datahubtools/payplan/cmd/createplan"
	"github.com/datahubtools/payplan/cmd/createuser"
	"github.com/datahubtools/payplan/cmd/listusers"
	"github.com/datahubtools/payplan/cmd/removeplan"
	"github.com/datahubtools/payplan/cmd/setplan"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "payplan",
	Short: "Payment plan administration",
	Long: `Payplan manages the payment plans of a datahub deployment.

Plans group paying users by name. Operators create plans, move users
between them, and report membership either as terminal-friendly member
columns or as tab-separated lines for scripts.`,
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.payplan.toml)")
	rootCmd.PersistentFlags().String("storage", "", "path to the plan database (default is $HOME/.payplan.db)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	// Register all commands
	commands := []Command{
		&createplan.Command{},
		&createuser.Command{},
		&setplan.Command{},
		&removeplan.Command{},
		&listusers.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".payplan" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".payplan")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("payplan")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running on flags alone is fine; only a malformed file is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cobra.CheckErr(fmt.Errorf("failed to read config file: %w", err))
		}
	}
}

// bindFlags copies config values into any flag the user did not set
// explicitly. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Viper compares case-insensitively, so only the hyphens need removing.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				cobra.CheckErr(err)
			}
		}
	})
}
