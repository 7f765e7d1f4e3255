package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"planet-distance/gallery"
	"planet-distance/locale"
	"planet-distance/location"
	"planet-distance/models"
	"planet-distance/presenter"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	planetKey string
	coords    string
	useDevice bool
	deviceAt  string
	verbose   bool
)

var estimateCmd = &cobra.Command{
	Use:     "estimate",
	Short:   "Estimate the distance to one planet",
	Example: `  planet-distance estimate --planet mars --coords "55.75, 37.62"
  planet-distance estimate --planet saturn --device`,
	RunE:    runEstimate,
}

var planetsCmd = &cobra.Command{
	Use:   "planets",
	Short: "List the planets of the gallery",
	Run: func(cmd *cobra.Command, args []string) {
		printGallery(cmd.OutOrStdout(), models.DefaultCatalog(), locale.New(cfg.Lang))
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&planetKey, "planet", "p", "", "Planet key (mercury ... neptune)")
	estimateCmd.Flags().StringVarP(&coords, "coords", "c", "", `Manual coordinates, "latitude, longitude"`)
	estimateCmd.Flags().BoolVarP(&useDevice, "device", "d", false, "Use the device location")
	estimateCmd.Flags().StringVar(&deviceAt, "device-at", "", `Pretend the device is at "latitude, longitude"`)
	estimateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the whole result")
	_ = estimateCmd.MarkFlagRequired("planet")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	device := deviceLocator(cfg)
	if deviceAt != "" {
		c, err := location.ParseCoordinates(deviceAt)
		if err != nil {
			return fmt.Errorf("--device-at: %w", err)
		}
		device = location.StaticLocator(c)
	}

	var opts []presenter.Option
	if verbose {
		opts = append(opts, presenter.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}
	p := newPresenter(models.DefaultCatalog(), device, opts...)

	board := &presenter.Board{}
	res, err := p.Calculate(context.Background(), presenter.Request{
		PlanetKey:   planetKey,
		UseDevice:   useDevice || deviceAt != "",
		Coordinates: coords,
	}, board)
	if err != nil {
		cmd.SilenceUsage = true
		if alerts := board.Alerts(); len(alerts) > 0 {
			return errors.New(alerts[len(alerts)-1])
		}
		return err
	}

	out := cmd.OutOrStdout()
	printPanel(out, p.Locale(), board.Panel())
	if verbose {
		fmt.Fprintf(out, "calculation %s\n%# v\n", res.ID, pretty.Formatter(res))
	}
	return nil
}

func printPanel(w io.Writer, l *locale.Localizer, panel presenter.Panel) {
	fmt.Fprintf(w, "%s %s %s %s:\n", l.Text(locale.MsgDistanceFrom), panel.LocationLabel, l.Text(locale.MsgDistanceTo), panel.PlanetLabel)
	fmt.Fprintf(w, "  %s\n", panel.DistanceValue)
	fmt.Fprintf(w, "  %s\n", panel.Comparison)
}

type terminalGallery struct {
	w io.Writer
	n int
}

func (t *terminalGallery) Append(card gallery.Card) {
	t.n++
	fmt.Fprintf(t.w, "%d. %-10s %-8s %s\n", t.n, card.Key, card.Label, card.Image)
}

func printGallery(w io.Writer, catalog *models.Catalog, l *locale.Localizer) {
	gallery.Render(catalog, l, &terminalGallery{w: w})
}
