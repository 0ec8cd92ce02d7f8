// Package main is the entry point for Soundscape, an adaptive audio
// spectrum visualizer.
//
// Build:
//
//	go build -o build/soundscape ./cmd
//
// Run:
//
//	./build/soundscape --style neon_wave --quality high
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tejashwikalptaru/soundscape/internal/app"
	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/visualizer"
)

func main() {
	config, run, err := parseArgs()
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}
	if !run {
		return
	}

	application, err := app.NewApplication(config)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Shutdown()

	if err := application.Run(); err != nil {
		log.Printf("Application error: %v", err)
	}
}

// parseArgs builds the application config from the command line. The
// returned bool is false when a subcommand already handled the request.
func parseArgs() (app.Config, bool, error) {
	config := app.DefaultConfig()
	run := false

	var (
		style   string
		quality string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "soundscape",
		Short:         "Adaptive audio spectrum visualizer",
		Version:       app.GetVersionInfo().FullString(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Style = visualizer.Style(style)
			config.Quality = domain.ParseQualityTier(quality)
			if verbose {
				config.LogLevel = slog.LevelDebug
			}
			run = true
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available visualizer styles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, info := range visualizer.NewRegistry().Styles() {
				fmt.Printf("%-12s %s\n", info.Style, info.Name)
			}
		},
	}
	rootCmd.AddCommand(listCmd)

	rootCmd.PersistentFlags().StringVarP(&style, "style", "t", string(config.Style),
		"Visualizer style. Use 'list' command to see available styles.")
	rootCmd.PersistentFlags().StringVarP(&quality, "quality", "q", config.Quality.String(),
		"Rendering quality tier (low, medium, high)")
	rootCmd.PersistentFlags().IntVarP(&config.BarCount, "bars", "n", config.BarCount,
		"Requested number of spectrum buckets (capped by the quality tier)")
	rootCmd.PersistentFlags().BoolVar(&config.Overlay, "overlay", config.Overlay,
		"Render in reduced overlay mode")
	rootCmd.PersistentFlags().Uint64Var(&config.Seed, "seed", config.Seed,
		"Seed for randomized rendering effects")
	rootCmd.PersistentFlags().StringVarP(&config.Source, "source", "s", config.Source,
		"Spectrum source (synthetic, websocket)")
	rootCmd.PersistentFlags().StringVarP(&config.Addr, "addr", "a", config.Addr,
		"WebSocket endpoint for the websocket source")
	rootCmd.PersistentFlags().IntVar(&config.FPS, "fps", config.FPS,
		"Synthetic source frame rate")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Show verbose output")

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return config, false, err
	}
	return config, run, nil
}
