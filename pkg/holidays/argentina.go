package holidays

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Monday-shift rule for "feriados trasladables" (ley 27.399): Tuesday and
// Wednesday observe the previous Monday, Thursday and Friday the following
// one. Weekend occurrences are not shifted.
var trasladable = []cal.AltDay{
	{Day: time.Tuesday, Offset: -1},
	{Day: time.Wednesday, Offset: -2},
	{Day: time.Thursday, Offset: 4},
	{Day: time.Friday, Offset: 3},
}

// argentineHolidays declares the Argentine national public holidays:
// non-movable dates, Easter-derived observances (Carnaval, Viernes Santo)
// and the Monday-shifted trasladables.
func argentineHolidays() []*cal.Holiday {
	return []*cal.Holiday{
		{
			Name:  "Año Nuevo",
			Type:  cal.ObservancePublic,
			Month: time.January,
			Day:   1,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:   "Carnaval",
			Type:   cal.ObservancePublic,
			Offset: -48, // Monday before Ash Wednesday
			Func:   cal.CalcEasterOffset,
		},
		{
			Name:   "Carnaval",
			Type:   cal.ObservancePublic,
			Offset: -47, // Shrove Tuesday
			Func:   cal.CalcEasterOffset,
		},
		{
			Name:  "Día Nacional de la Memoria por la Verdad y la Justicia",
			Type:  cal.ObservancePublic,
			Month: time.March,
			Day:   24,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:   "Viernes Santo",
			Type:   cal.ObservancePublic,
			Offset: -2,
			Func:   cal.CalcEasterOffset,
		},
		{
			Name:  "Día del Veterano y de los Caídos en la Guerra de Malvinas",
			Type:  cal.ObservancePublic,
			Month: time.April,
			Day:   2,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:  "Día del Trabajador",
			Type:  cal.ObservancePublic,
			Month: time.May,
			Day:   1,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:  "Día de la Revolución de Mayo",
			Type:  cal.ObservancePublic,
			Month: time.May,
			Day:   25,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:     "Paso a la Inmortalidad del General Martín Miguel de Güemes",
			Type:     cal.ObservancePublic,
			Month:    time.June,
			Day:      17,
			Func:     cal.CalcDayOfMonth,
			Observed: trasladable,
		},
		{
			Name:  "Paso a la Inmortalidad del General Manuel Belgrano",
			Type:  cal.ObservancePublic,
			Month: time.June,
			Day:   20,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:  "Día de la Independencia",
			Type:  cal.ObservancePublic,
			Month: time.July,
			Day:   9,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:     "Paso a la Inmortalidad del General José de San Martín",
			Type:     cal.ObservancePublic,
			Month:    time.August,
			Day:      17,
			Func:     cal.CalcDayOfMonth,
			Observed: trasladable,
		},
		{
			Name:     "Día del Respeto a la Diversidad Cultural",
			Type:     cal.ObservancePublic,
			Month:    time.October,
			Day:      12,
			Func:     cal.CalcDayOfMonth,
			Observed: trasladable,
		},
		{
			Name:     "Día de la Soberanía Nacional",
			Type:     cal.ObservancePublic,
			Month:    time.November,
			Day:      20,
			Func:     cal.CalcDayOfMonth,
			Observed: trasladable,
		},
		{
			Name:  "Inmaculada Concepción de María",
			Type:  cal.ObservancePublic,
			Month: time.December,
			Day:   8,
			Func:  cal.CalcDayOfMonth,
		},
		{
			Name:  "Navidad",
			Type:  cal.ObservancePublic,
			Month: time.December,
			Day:   25,
			Func:  cal.CalcDayOfMonth,
		},
	}
}
