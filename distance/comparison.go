package distance

import (
	"strconv"

	"planet-distance/locale"
)

// EarthCircumference is the length of Earth's equator in km.
const EarthCircumference = 40075

// Trips returns how many times km goes around the equator.
func Trips(km int64) float64 {
	return float64(km) / EarthCircumference
}

// FormatComparison phrases km as trips around Earth along the equator. The
// count always has one decimal and a dot separator.
func FormatComparison(l *locale.Localizer, km int64) string {
	trips := strconv.FormatFloat(Trips(km), 'f', 1, 64)
	return l.Sprintf(locale.MsgComparison, trips)
}

// FormatDistance renders km with digit grouping and the unit.
func FormatDistance(l *locale.Localizer, km int64) string {
	return l.Sprintf(locale.MsgDistanceValue, l.Integer(km))
}
