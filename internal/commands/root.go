package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cube-netter/internal/config"
	"cube-netter/internal/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is the application version.
const Version = "0.1.0"

var (
	cfgPath string
	verbose bool

	// cfg and log are initialized by the root PersistentPreRunE and shared
	// by all subcommands.
	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:     "cube-netter",
	Short:   "Reconstruct the unfolded net of a photographed color cube",
	Long:    "Detects colored stickers in five cube photographs by HSV thresholding and stitches the faces into a single unfolded net image.",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = logger.NewConsoleLogger(level)

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg.WarnDeadProfiles(log)

		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML config file (default: built-in profiles)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
