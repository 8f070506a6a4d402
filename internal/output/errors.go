package output

import "errors"

var (
	// ErrUnsupportedFormat is returned for an unknown report format
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrNoSimulation is returned when exporting before any calculation has run
	ErrNoSimulation = errors.New("no simulation results to export")
)
