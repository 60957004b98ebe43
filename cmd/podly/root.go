package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"podly/internal/config"
	"podly/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podly",
	Short: "podly: book coworking pods from your terminal",
	Long: `podly is a terminal client for the pod booking service. Browse stores
and pods, check open slots, assemble multi-date bookings and review your
booking history without leaving the shell.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'podly --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the interactive menu
		return runInteractive()
	}
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the booking service (overrides config and PODLY_API_URL)")

	// Every persistent flag is overridable via config file or PODLY_* env.
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	if port := viper.GetInt("metrics_port"); port > 0 {
		addr := fmt.Sprintf(":%d", port)
		go func() {
			if err := telemetry.StartMetricsServer(addr); err != nil {
				slog.Warn("Metrics server stopped", "error", err)
			}
		}()
	}
}
