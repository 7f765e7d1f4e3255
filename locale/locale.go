// Package locale holds the user-facing strings of the page in Russian and
// English and the printers that format them.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"

	"planet-distance/models"
)

// Message keys. The English text doubles as the key.
const (
	MsgEnterValidCoordinates = "enter valid coordinates."
	MsgLocationUnavailable   = "could not get your location. Allow access to geolocation or enter the coordinates manually."
	MsgLocationUnsupported   = "geolocation is not supported."
	MsgUnknownPlanet         = "unknown planet."
	MsgDeviceLocation        = "your location"
	MsgManualLocation        = "the given point"
	MsgComparison            = "That distance equals %s trips around Earth along the equator!"
	MsgDistanceValue         = "%v km"

	// page
	MsgTitle         = "How far is it to the planet?"
	MsgChoosePlanet  = "Choose a planet"
	MsgUseLocation   = "Use my location"
	MsgCoordinates   = "Coordinates (latitude, longitude)"
	MsgCalculate     = "Calculate"
	MsgDistanceFrom  = "Distance from"
	MsgDistanceTo    = "to"
	MsgGallery       = "Planets of the Solar System"
	MsgApproximation = "This is a model: the real distance depends on where the planets are on their orbits."
)

var translations = map[string]string{
	MsgEnterValidCoordinates: "Введите корректные координаты.",
	MsgLocationUnavailable:   "Не удалось получить ваше местоположение. Разрешите доступ к геолокации или введите координаты вручную.",
	MsgLocationUnsupported:   "Геолокация не поддерживается вашим браузером.",
	MsgUnknownPlanet:         "Неизвестная планета.",
	MsgDeviceLocation:        "твоей точки",
	MsgManualLocation:        "заданной точки",
	MsgComparison:            "Это расстояние равняется %s путешествиям вокруг Земли по экватору!",
	MsgDistanceValue:         "%v км",

	MsgTitle:         "Как далеко до планеты?",
	MsgChoosePlanet:  "Выберите планету",
	MsgUseLocation:   "Мое местоположение",
	MsgCoordinates:   "Координаты (широта, долгота)",
	MsgCalculate:     "Рассчитать",
	MsgDistanceFrom:  "Расстояние от",
	MsgDistanceTo:    "до",
	MsgGallery:       "Планеты Солнечной системы",
	MsgApproximation: "Это модель! Реальное расстояние зависит от положения планет на орбите.",
}

var builder = newBuilder()

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ru := range translations {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.Russian, key, ru)
	}
	return b
}

// Localizer formats messages and numbers for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for lang ("ru", "en", ...). Unknown or
// unsupported languages fall back to Russian, the page's language.
func New(lang string) *Localizer {
	tag := Match(lang)
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// Match picks the supported language closest to lang.
func Match(lang string) language.Tag {
	matcher := language.NewMatcher([]language.Tag{language.Russian, language.English})
	parsed, err := language.Parse(lang)
	if err != nil {
		return language.Russian
	}
	_, i, conf := matcher.Match(parsed)
	if conf == language.No {
		return language.Russian
	}
	return []language.Tag{language.Russian, language.English}[i]
}

// Tag returns the language in use.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Text translates a message key that takes no arguments.
func (l *Localizer) Text(key string) string {
	return l.printer.Sprintf(key)
}

// Sprintf translates key and formats args into it.
func (l *Localizer) Sprintf(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

// Integer formats n with the language's digit grouping.
func (l *Localizer) Integer(n int64) string {
	return l.printer.Sprintf("%v", number.Decimal(n))
}

// PlanetName returns the name shown after "до" on the page.
func (l *Localizer) PlanetName(p models.Planet) string {
	if l.tag == language.Russian {
		return p.NameRU
	}
	return p.Name
}
