package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"datepick/internal/datelike"
	"datepick/internal/granularity"
	"datepick/internal/locale"
	"datepick/internal/picker"
)

func texts(t *testing.T, key string) locale.Texts {
	t.Helper()
	tx, err := locale.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", key, err)
	}
	return tx
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestLayout_DatePageSpillsIntoNeighbours(t *testing.T) {
	cells := layout(day(2015, time.January, 17), granularity.Date, texts(t, "en"))
	if len(cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(cells))
	}
	// 2015-01-01 is a Thursday.
	if !cells[0].Time.Equal(day(2014, time.December, 28)) || !cells[0].Outside {
		t.Fatalf("unexpected first cell %+v", cells[0])
	}
	if !cells[4].Time.Equal(day(2015, time.January, 1)) || cells[4].Outside || cells[4].Label != "1" {
		t.Fatalf("unexpected cell for jan 1: %+v", cells[4])
	}
	last := cells[len(cells)-1]
	if !last.Time.Equal(day(2015, time.February, 7)) || !last.Outside {
		t.Fatalf("unexpected last cell %+v", last)
	}
}

func TestLayout_MonthAndYearPages(t *testing.T) {
	months := layout(day(2015, time.June, 9), granularity.Month, texts(t, "en"))
	if len(months) != 12 || months[0].Label != "Jan" || !months[11].Time.Equal(day(2015, time.December, 1)) {
		t.Fatalf("unexpected month page %+v", months)
	}
	years := layout(day(2015, time.June, 9), granularity.Year, texts(t, "en"))
	if len(years) != 12 || years[0].Label != "2011" || years[11].Label != "2022" {
		t.Fatalf("unexpected year page %+v", years)
	}
}

func TestStep(t *testing.T) {
	cases := []struct {
		g        granularity.Granularity
		next     time.Time
		nextYear time.Time
	}{
		{granularity.Date, day(2015, time.February, 1), day(2016, time.January, 1)},
		{granularity.Month, day(2016, time.January, 1), day(2016, time.January, 1)},
		{granularity.Year, day(2027, time.January, 1), day(2027, time.January, 1)},
	}
	for _, tc := range cases {
		m := New(texts(t, "en"))
		m.Draw(picker.DrawRequest{Date: day(2015, time.January, 31), Type: tc.g})
		if got := m.NextDate(); !got.Equal(tc.next) {
			t.Fatalf("%s NextDate=%v want %v", tc.g, got, tc.next)
		}
		if got := m.NextYearDate(); !got.Equal(tc.nextYear) {
			t.Fatalf("%s NextYearDate=%v want %v", tc.g, got, tc.nextYear)
		}
		if got := m.PrevDate(); !step(got, tc.g, 1).Equal(firstOfMonth(day(2015, time.January, 31))) {
			t.Fatalf("%s PrevDate=%v does not step back", tc.g, got)
		}
	}
}

func TestTitle(t *testing.T) {
	d := day(2015, time.January, 10)
	if got := title(d, granularity.Date, texts(t, "en")); got != "January 2015" {
		t.Fatalf("date title %q", got)
	}
	if got := title(d, granularity.Date, texts(t, "ko")); got != "2015년 1월" {
		t.Fatalf("korean date title %q", got)
	}
	if got := title(d, granularity.Month, texts(t, "en")); got != "2015" {
		t.Fatalf("month title %q", got)
	}
	if got := title(d, granularity.Year, texts(t, "en")); got != "2011 - 2022" {
		t.Fatalf("year title %q", got)
	}
}

func TestDraw_NotifiesAndResetsDecoration(t *testing.T) {
	m := New(texts(t, "en"))
	var got []picker.Drawn
	m.OnDrawn(func(d picker.Drawn) { got = append(got, d) })
	m.Draw(picker.DrawRequest{Date: day(2015, time.January, 17), Type: granularity.Date})
	if len(got) != 1 || len(got[0].Cells) != 42 || got[0].Type != granularity.Date {
		t.Fatalf("unexpected drawn notifications %+v", got)
	}
	c, ok := m.Cursor()
	if !ok || !c.Time.Equal(day(2015, time.January, 17)) {
		t.Fatalf("cursor should start on the anchor, got %+v", c)
	}
	m.Decorate(picker.Decoration{Cells: make([]picker.CellState, 3)})
	if m.decorated {
		t.Fatalf("a decoration for a different page must be ignored")
	}
}

func TestUpdate_MovesCursorAndReportsOverflow(t *testing.T) {
	m := New(texts(t, "en"))
	m.Draw(picker.DrawRequest{Date: day(2015, time.June, 1), Type: granularity.Month})
	if handled, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight}); handled {
		t.Fatalf("blurred grid must ignore keys")
	}
	m.Focus()
	if handled, over := m.Update(tea.KeyMsg{Type: tea.KeyDown}); !handled || over != 0 {
		t.Fatalf("down should move within the page")
	}
	if c, _ := m.Cursor(); c.Time.Month() != time.September {
		t.Fatalf("down from june should land on september, got %v", c.Time.Month())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if _, over := m.Update(tea.KeyMsg{Type: tea.KeyDown}); over != 1 {
		t.Fatalf("down from the last row should overflow forward")
	}
	if _, over := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}); over != 0 {
		t.Fatalf("h should move left")
	}
	if c, _ := m.Cursor(); c.Time.Month() != time.November {
		t.Fatalf("expected november, got %v", c.Time.Month())
	}
}

func TestView_WithController(t *testing.T) {
	m := New(texts(t, "en"))
	c, err := picker.New(context.Background(), picker.Options{
		Calendar: picker.CalendarOptions{Renderer: m},
		Location: time.UTC,
		Now:      func() time.Time { return day(2015, time.January, 20) },
		Document: picker.NewDocument(),
		Date:     datelike.YMD(2015, time.January, 10),
		SelectableRanges: [][]datelike.Value{
			{datelike.YMD(2015, time.January, 1), datelike.YMD(2015, time.January, 31)},
		},
	})
	if err != nil {
		t.Fatalf("picker.New: %v", err)
	}
	c.Open()
	dec := m.Decoration()
	if len(dec.Cells) != 42 || !dec.HidePrev || !dec.HideNext {
		t.Fatalf("unexpected decoration %+v", dec)
	}
	if dec.Cells[0].Selectable {
		t.Fatalf("spill-over december cell must not be selectable")
	}
	if !dec.Cells[13].Selected {
		t.Fatalf("january 10 should be selected")
	}
	view := m.View()
	if !strings.Contains(view, "January 2015") || strings.Contains(view, "‹") || strings.Contains(view, "›") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestSharedDocument_InstancesDoNotClaimEachOther(t *testing.T) {
	doc := picker.NewDocument()
	open := func() (*Model, *picker.Controller) {
		m := New(texts(t, "en"))
		c, err := picker.New(context.Background(), picker.Options{
			Calendar: picker.CalendarOptions{Renderer: m},
			Location: time.UTC,
			Now:      func() time.Time { return day(2015, time.January, 20) },
			Document: doc,
		})
		if err != nil {
			t.Fatalf("picker.New: %v", err)
		}
		c.Open()
		return m, c
	}
	calA, a := open()
	calB, b := open()
	if calA.ID == calB.ID {
		t.Fatalf("calendars share id %q", calA.ID)
	}

	doc.Dispatch(calA.ID)
	if !a.IsOpened() {
		t.Fatalf("interaction on its own calendar closed A")
	}
	if b.IsOpened() {
		t.Fatalf("interaction on A's calendar should close B")
	}
}
