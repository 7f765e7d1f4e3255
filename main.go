package main

import (
	"fmt"
	"log"
	"os"

	"planet-distance/config"
	"planet-distance/distance"
	"planet-distance/handlers"
	"planet-distance/locale"
	"planet-distance/location"
	"planet-distance/models"
	"planet-distance/presenter"

	"github.com/spf13/cobra"
)

var (
	envFile string
	lang    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "planet-distance",
	Short: "How far is it to the planet?",
	Long:  `Pick a planet and get a playful, randomized estimate of how far it is from Earth.`,
	// main prints the error once
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load(envFile)
		if lang != "" {
			cfg.Lang = lang
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page and the JSON API",
	RunE:  runServe,
}

var addr string

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to the .env file")
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "", "Language of the page (ru, en)")

	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from PLANETS_ADDR)")

	rootCmd.AddCommand(serveCmd, estimateCmd, planetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// deviceLocator returns the Google locator when an API key is configured.
// Without one the device location is reported as unsupported.
func deviceLocator(c config.Config) location.DeviceLocator {
	if c.MapsAPIKey == "" {
		return nil
	}
	g, err := location.NewGoogleLocator(c.MapsAPIKey)
	if err != nil {
		log.Printf("device location disabled: %v", err)
		return nil
	}
	return g
}

func newPresenter(catalog *models.Catalog, device location.DeviceLocator, opts ...presenter.Option) *presenter.Presenter {
	return presenter.New(
		catalog,
		location.NewResolver(device),
		distance.NewEstimator(catalog, nil),
		locale.New(cfg.Lang),
		opts...,
	)
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr != "" {
		cfg.Addr = addr
	}

	catalog := models.DefaultCatalog()
	p := newPresenter(catalog, deviceLocator(cfg))

	r, err := handlers.NewRouter(handlers.New(catalog, p), handlers.RouterConfig{
		ImagesDir:      cfg.ImagesDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	log.Printf("Planet distance running on http://localhost%s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
