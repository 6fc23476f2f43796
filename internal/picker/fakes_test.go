package picker

import (
	"time"

	"datepick/internal/granularity"
)

type fakeRenderer struct {
	typ     granularity.Granularity
	date    time.Time
	draws   []DrawRequest
	last    Decoration
	decos   int
	drawn   Handlers[Drawn]
	targets map[Target]bool
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{targets: map[Target]bool{}}
}

func (r *fakeRenderer) Draw(req DrawRequest) {
	r.typ, r.date = req.Type, req.Date
	r.draws = append(r.draws, req)
	r.drawn.Emit(Drawn{Type: req.Type, Date: req.Date, Cells: r.cells(req)})
}

// cells lays out a simplified page: the days of the month, the months of
// the year, or twelve years starting four before the anchor.
func (r *fakeRenderer) cells(req DrawRequest) []Cell {
	var out []Cell
	d := req.Date
	switch req.Type {
	case granularity.Date:
		for i := 1; i <= granularity.DaysIn(d.Year(), d.Month()); i++ {
			out = append(out, Cell{Time: time.Date(d.Year(), d.Month(), i, 0, 0, 0, 0, d.Location())})
		}
	case granularity.Month:
		for m := time.January; m <= time.December; m++ {
			out = append(out, Cell{Time: time.Date(d.Year(), m, 1, 0, 0, 0, 0, d.Location())})
		}
	case granularity.Year:
		for y := d.Year() - 4; y < d.Year()+8; y++ {
			out = append(out, Cell{Time: time.Date(y, time.January, 1, 0, 0, 0, 0, d.Location())})
		}
	}
	return out
}

func (r *fakeRenderer) Type() granularity.Granularity { return r.typ }
func (r *fakeRenderer) Date() time.Time { return r.date }
func (r *fakeRenderer) NextDate() time.Time { return r.step(1) }
func (r *fakeRenderer) PrevDate() time.Time { return r.step(-1) }
func (r *fakeRenderer) NextYearDate() time.Time { return r.date.AddDate(1, 0, 0) }
func (r *fakeRenderer) PrevYearDate() time.Time { return r.date.AddDate(-1, 0, 0) }

func (r *fakeRenderer) step(n int) time.Time {
	switch r.typ {
	case granularity.Year:
		return r.date.AddDate(12*n, 0, 0)
	case granularity.Month:
		return r.date.AddDate(n, 0, 0)
	}
	return r.date.AddDate(0, n, 0)
}

func (r *fakeRenderer) OnDrawn(fn func(Drawn)) Subscription { return r.drawn.Add(fn) }

func (r *fakeRenderer) Decorate(d Decoration) {
	r.last = d
	r.decos++
}

func (r *fakeRenderer) Owns(t Target) bool { return r.targets[t] }

type fakeInput struct {
	text     string
	value    time.Time
	err      error
	format   string
	disabled bool
	sets     int
	changed  Signal
	activate Signal
}

func (in *fakeInput) Date() (time.Time, error) { return in.value, in.err }

func (in *fakeInput) SetDate(t time.Time) {
	in.sets++
	in.value, in.err = t, nil
	in.text = t.Format("2006-01-02")
}

func (in *fakeInput) SetFormat(f string) error {
	in.format = f
	return nil
}

func (in *fakeInput) ClearText() {
	in.text = ""
	in.err = ErrEmptyInput
}

func (in *fakeInput) Enable() { in.disabled = false }
func (in *fakeInput) Disable() { in.disabled = true }

func (in *fakeInput) OnChange(fn func()) Subscription { return in.changed.Add(fn) }
func (in *fakeInput) OnActivate(fn func()) Subscription { return in.activate.Add(fn) }

// typed simulates the user editing the text to something the adapter
// resolves to t, or fails with err.
func (in *fakeInput) typed(text string, t time.Time, err error) {
	in.text, in.value, in.err = text, t, err
	in.changed.Emit()
}

type fakeTime struct {
	hour, minute int
	changed      Signal
}

func (w *fakeTime) Hour() int { return w.hour }
func (w *fakeTime) Minute() int { return w.minute }
func (w *fakeTime) SetTime(h, m int) { w.hour, w.minute = h, m }
func (w *fakeTime) OnChange(fn func()) Subscription { return w.changed.Add(fn) }

func (w *fakeTime) edit(h, m int) {
	w.hour, w.minute = h, m
	w.changed.Emit()
}

type fakeOpener struct {
	activate Signal
}

func (o *fakeOpener) OnActivate(fn func()) Subscription { return o.activate.Add(fn) }
func (o *fakeOpener) Owns(t Target) bool { return t == Target(o) }
