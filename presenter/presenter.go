// Package presenter runs one distance calculation per button press and writes
// the outcome to a display.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"planet-distance/distance"
	"planet-distance/locale"
	"planet-distance/location"
	"planet-distance/models"
)

// State is a step of a calculation.
type State int

const (
	Idle State = iota
	Resolving
	Presenting
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Presenting:
		return "presenting"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Request holds the input controls as read when the button is pressed.
type Request struct {
	PlanetKey   string `json:"planet"`
	UseDevice   bool   `json:"use_location"`
	Coordinates string `json:"coordinates"`
}

// Result is one finished calculation.
type Result struct {
	ID          uuid.UUID          `json:"id"`
	Planet      models.Planet      `json:"planet"`
	Source      location.Source    `json:"source"`
	Coordinates models.Coordinates `json:"coordinates"`
	DistanceKm  int64              `json:"distance_km"`
	Trips       float64            `json:"trips"`

	LocationLabel string `json:"location_label"`
	PlanetLabel   string `json:"planet_label"`
	DistanceValue string `json:"distance_value"`
	Comparison    string `json:"comparison"`
}

// Display is the output surface of the page.
type Display interface {
	// Show fills the result slots and reveals the result panel.
	Show(Result)
	// Alert notifies the user of a failed calculation.
	Alert(message string)
}

// Observer is told about every state change of a calculation.
type Observer func(id uuid.UUID, from, to State)

// Option configures a Presenter.
type Option func(*Presenter)

// WithObserver registers o.
func WithObserver(o Observer) Option {
	return func(p *Presenter) { p.observer = o }
}

// WithLogger makes the presenter log transitions to l.
func WithLogger(l *log.Logger) Option {
	return func(p *Presenter) { p.logger = l }
}

// Presenter wires the resolver, estimator and formatter together.
type Presenter struct {
	catalog   *models.Catalog
	resolver  *location.Resolver
	estimator *distance.Estimator
	locale    *locale.Localizer
	observer  Observer
	logger    *log.Logger
}

// New returns a Presenter.
func New(catalog *models.Catalog, resolver *location.Resolver, estimator *distance.Estimator, l *locale.Localizer, opts ...Option) *Presenter {
	p := &Presenter{
		catalog:   catalog,
		resolver:  resolver,
		estimator: estimator,
		locale:    l,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Locale returns the localizer used for display strings.
func (p *Presenter) Locale() *locale.Localizer { return p.locale }

type run struct {
	p     *Presenter
	id    uuid.UUID
	state State
}

func (r *run) to(s State) {
	from := r.state
	r.state = s
	if r.p.logger != nil {
		r.p.logger.Printf("calculation %s: %s -> %s", r.id, from, s)
	}
	if r.p.observer != nil {
		r.p.observer(r.id, from, s)
	}
}

// Calculate runs one calculation for req and writes the outcome to d. The
// error is returned as well so callers can classify it; d has already been
// alerted by then.
func (p *Presenter) Calculate(ctx context.Context, req Request, d Display) (Result, error) {
	r := &run{p: p, id: uuid.New(), state: Idle}
	defer r.to(Idle)

	planet, err := p.catalog.Get(req.PlanetKey)
	if err != nil {
		r.to(Failed)
		d.Alert(p.locale.Text(locale.MsgUnknownPlanet))
		return Result{}, fmt.Errorf("planet %q: %w", req.PlanetKey, err)
	}

	r.to(Resolving)
	coords, src, err := p.resolver.Resolve(ctx, location.Request{
		UseDevice: req.UseDevice,
		Text:      req.Coordinates,
	})
	if err != nil {
		r.to(Failed)
		d.Alert(p.message(err))
		return Result{}, err
	}

	r.to(Presenting)
	km, err := p.estimator.Estimate(planet.Key)
	if err != nil {
		r.to(Failed)
		d.Alert(p.message(err))
		return Result{}, err
	}

	res := Result{
		ID:            r.id,
		Planet:        planet,
		Source:        src,
		Coordinates:   coords,
		DistanceKm:    km,
		Trips:         distance.Trips(km),
		LocationLabel: p.locationLabel(src),
		PlanetLabel:   p.locale.PlanetName(planet),
		DistanceValue: distance.FormatDistance(p.locale, km),
		Comparison:    distance.FormatComparison(p.locale, km),
	}
	d.Show(res)
	return res, nil
}

func (p *Presenter) locationLabel(src location.Source) string {
	if src == location.SourceDevice {
		return p.locale.Text(locale.MsgDeviceLocation)
	}
	return p.locale.Text(locale.MsgManualLocation)
}

// message returns the localized text for err.
func (p *Presenter) message(err error) string {
	var m interface{ Message() string }
	if errors.As(err, &m) {
		return p.locale.Text(m.Message())
	}
	if errors.Is(err, models.ErrPlanetNotFound) {
		return p.locale.Text(locale.MsgUnknownPlanet)
	}
	return err.Error()
}
