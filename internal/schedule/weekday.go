package schedule

import (
	"strings"
	"time"
)

// Weekday identifies a day of the week. Days are compared by this value,
// never by their display name, so accented and unaccented spellings of the
// same day ("Miércoles" / "Miercoles") resolve to the same key.
type Weekday int

const (
	Lunes Weekday = iota
	Martes
	Miercoles
	Jueves
	Viernes
	Sabado
	Domingo
)

// AllWeekdays lists the days in canonical order, Monday first.
var AllWeekdays = []Weekday{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

var weekdayNames = [...]string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

// String returns the canonical Spanish name of the day.
func (d Weekday) String() string {
	if d < Lunes || d > Domingo {
		return "Desconocido"
	}
	return weekdayNames[d]
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
)

// ParseWeekday resolves a day name into its Weekday value. Case and
// accents are ignored, legacy records spell days both ways.
func ParseWeekday(name string) (Weekday, bool) {
	switch accentReplacer.Replace(strings.ToLower(strings.TrimSpace(name))) {
	case "lunes":
		return Lunes, true
	case "martes":
		return Martes, true
	case "miercoles":
		return Miercoles, true
	case "jueves":
		return Jueves, true
	case "viernes":
		return Viernes, true
	case "sabado":
		return Sabado, true
	case "domingo":
		return Domingo, true
	}
	return 0, false
}

// WeekdayOf maps a time.Weekday (Sunday-based) onto the Monday-based enum.
func WeekdayOf(wd time.Weekday) Weekday {
	if wd == time.Sunday {
		return Domingo
	}
	return Weekday(int(wd) - 1)
}
