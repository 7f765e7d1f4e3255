package presenter

import "sync"

// Panel is a snapshot of the result area.
type Panel struct {
	Visible       bool
	LocationLabel string
	PlanetLabel   string
	DistanceValue string
	Comparison    string
}

// Board is an in-memory Display. Writes from concurrent calculations are
// last-write-wins.
type Board struct {
	mu     sync.Mutex
	panel  Panel
	alerts []string
}

// Show implements Display.
func (b *Board) Show(r Result) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.panel = Panel{
		Visible:       true,
		LocationLabel: r.LocationLabel,
		PlanetLabel:   r.PlanetLabel,
		DistanceValue: r.DistanceValue,
		Comparison:    r.Comparison,
	}
}

// Alert implements Display.
func (b *Board) Alert(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append(b.alerts, message)
}

// Panel returns the current result area.
func (b *Board) Panel() Panel {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.panel
}

// Alerts returns every alert raised so far.
func (b *Board) Alerts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.alerts))
	copy(out, b.alerts)
	return out
}

// Recorder captures the outcome of a single calculation.
type Recorder struct {
	Result  *Result
	Message string
}

// Show implements Display.
func (r *Recorder) Show(res Result) { r.Result = &res }

// Alert implements Display.
func (r *Recorder) Alert(message string) { r.Message = message }
