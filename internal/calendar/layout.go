package calendar

import (
	"strconv"
	"time"

	"datepick/internal/granularity"
	"datepick/internal/locale"
	"datepick/internal/picker"
)

const (
	dateCells  = 42
	dateCols   = 7
	blockCols  = 3
	yearsShown = 12
	// yearsBefore is how many years precede the anchor year on a YEAR page.
	yearsBefore = 4
)

func columns(g granularity.Granularity) int {
	if g == granularity.Date {
		return dateCols
	}
	return blockCols
}

// firstOfMonth keeps paging arithmetic away from day overflow (Jan 31 plus
// one month is not March).
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func firstYear(t time.Time) int { return t.Year() - yearsBefore }

// layout returns the cells of the page containing anchor at g.
func layout(anchor time.Time, g granularity.Granularity, texts locale.Texts) []picker.Cell {
	loc := anchor.Location()
	switch g {
	case granularity.Year:
		out := make([]picker.Cell, 0, yearsShown)
		for y := firstYear(anchor); y < firstYear(anchor)+yearsShown; y++ {
			out = append(out, picker.Cell{Time: time.Date(y, time.January, 1, 0, 0, 0, 0, loc), Label: strconv.Itoa(y)})
		}
		return out
	case granularity.Month:
		out := make([]picker.Cell, 0, 12)
		for m := time.January; m <= time.December; m++ {
			out = append(out, picker.Cell{Time: time.Date(anchor.Year(), m, 1, 0, 0, 0, 0, loc), Label: texts.MonthShort(m)})
		}
		return out
	}
	first := firstOfMonth(anchor)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	out := make([]picker.Cell, 0, dateCells)
	for i := 0; i < dateCells; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, picker.Cell{
			Time:    d,
			Label:   strconv.Itoa(d.Day()),
			Outside: d.Month() != first.Month(),
		})
	}
	return out
}

// step moves anchor by n pages at g: a month per DATE page, a year per
// MONTH page and twelve years per YEAR page.
func step(anchor time.Time, g granularity.Granularity, n int) time.Time {
	first := firstOfMonth(anchor)
	switch g {
	case granularity.Year:
		return first.AddDate(yearsShown*n, 0, 0)
	case granularity.Month:
		return first.AddDate(n, 0, 0)
	}
	return first.AddDate(0, n, 0)
}

// stepYear moves anchor by n years, or by n YEAR pages on a YEAR page.
func stepYear(anchor time.Time, g granularity.Granularity, n int) time.Time {
	if g == granularity.Year {
		return step(anchor, g, n)
	}
	return firstOfMonth(anchor).AddDate(n, 0, 0)
}

func title(anchor time.Time, g granularity.Granularity, texts locale.Texts) string {
	switch g {
	case granularity.Year:
		return sprintf(texts.TitleYear, firstYear(anchor), firstYear(anchor)+yearsShown-1)
	case granularity.Month:
		return sprintf(texts.TitleMonth, anchor.Year())
	}
	return sprintf(texts.TitleDate, texts.Month(anchor.Month()), anchor.Year())
}
