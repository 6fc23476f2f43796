// Package picker orchestrates a date picker: it owns the committed value,
// the selectable ranges and the drill state, and keeps a calendar renderer,
// an optional time widget and an optional text input consistent with them.
package picker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cloudeng.io/logging/ctxlog"

	"datepick/internal/datelike"
	"datepick/internal/granularity"
	"datepick/internal/interval"
	"datepick/internal/locale"
	"datepick/internal/selection"
)

type openerBinding struct {
	opener Opener
	sub    Subscription
}

// Controller is a single picker instance. It is not safe for concurrent use;
// every method is expected to run on the caller's event loop.
type Controller struct {
	log   *slog.Logger
	loc   *time.Location
	now   func() time.Time
	texts locale.Texts
	doc   *Document

	state *selection.State
	nav   *granularity.Navigator

	renderer   Renderer
	timeWidget TimeWidget
	input      InputAdapter
	openers    []*openerBinding

	showAlways bool
	autoClose  bool
	opened     bool
	disabled   bool
	destroyed  bool
	syncing    bool

	outside Subscription
	subs    []Subscription
	events  map[EventKind]*Handlers[Event]
}

// New validates opts and builds a controller. Every configuration problem is
// reported at once in a *ConfigurationError.
func New(ctx context.Context, opts Options) (*Controller, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	c := &Controller{
		log:        ctxlog.Logger(ctx).With("component", "picker"),
		loc:        r.loc,
		now:        r.now,
		texts:      r.texts,
		doc:        r.doc,
		state:      selection.New(r.target, r.ranges),
		nav:        granularity.NewNavigator(r.target),
		renderer:   opts.Calendar.Renderer,
		timeWidget: opts.TimeWidget,
		input:      opts.Input.Adapter,
		showAlways: opts.ShowAlways,
		autoClose:  opts.AutoClose,
		events:     map[EventKind]*Handlers[Event]{},
	}
	if c.input != nil && opts.Input.Format != "" {
		if err := c.input.SetFormat(opts.Input.Format); err != nil {
			return nil, &ConfigurationError{Err: err}
		}
	}

	c.subs = append(c.subs, c.renderer.OnDrawn(c.onDrawn))
	if c.timeWidget != nil {
		c.subs = append(c.subs, c.timeWidget.OnChange(c.onTimeChanged))
	}
	if c.input != nil {
		c.subs = append(c.subs,
			c.input.OnChange(c.onInputChanged),
			c.input.OnActivate(c.onInputActivated),
		)
	}
	for _, o := range opts.Openers {
		c.AddOpener(o)
	}

	if t, ok, err := opts.Date.Resolve(c.loc); err != nil {
		c.log.Warn("initial date ignored", "error", err)
	} else if ok {
		if !c.state.Commit(t) {
			c.log.Debug("initial date not selectable", "date", t)
		}
	}
	c.syncCollaborators()

	c.log.Debug("picker created", "type", r.target.String(), "ranges", c.state.Ranges().Len(), "show_always", c.showAlways)
	if c.showAlways {
		c.open()
	}
	return c, nil
}

// Texts returns the locale table the picker was configured with.
func (c *Controller) Texts() locale.Texts { return c.texts }

func (c *Controller) Location() *time.Location { return c.loc }

// Subscribe registers fn for notifications of kind.
func (c *Controller) Subscribe(kind EventKind, fn func(Event)) Subscription {
	h, ok := c.events[kind]
	if !ok {
		h = &Handlers[Event]{}
		c.events[kind] = h
	}
	return h.Add(fn)
}

func (c *Controller) emit(ev Event) {
	if h, ok := c.events[ev.Kind]; ok {
		h.Emit(ev)
	}
}

// Open shows the calendar at the target granularity, anchored at the value
// or, without one, at the current time.
func (c *Controller) Open() {
	if c.destroyed || c.disabled || c.opened {
		return
	}
	c.open()
}

func (c *Controller) open() {
	c.opened = true
	anchor := c.anchor()
	c.nav.Reset(anchor)
	if !c.showAlways {
		c.outside = c.doc.Listen(c.onOutside)
	}
	c.draw(anchor)
	c.log.Debug("opened", "anchor", anchor)
	c.emit(Event{Kind: EventOpen})
}

// Close hides the calendar. It does nothing for an always-open picker.
func (c *Controller) Close() {
	if c.showAlways {
		return
	}
	c.close()
}

func (c *Controller) close() {
	if !c.opened {
		return
	}
	c.opened = false
	if c.outside != nil {
		c.outside.Unsubscribe()
		c.outside = nil
	}
	c.log.Debug("closed")
	c.emit(Event{Kind: EventClose})
}

func (c *Controller) Toggle() {
	if c.opened {
		c.Close()
		return
	}
	c.Open()
}

func (c *Controller) IsOpened() bool { return c.opened }

func (c *Controller) anchor() time.Time {
	if v, ok := c.state.Value(); ok {
		return v
	}
	return c.now().In(c.loc)
}

func (c *Controller) draw(anchor time.Time) {
	c.nav.SetAnchor(anchor)
	c.renderer.Draw(DrawRequest{Date: anchor, Type: c.nav.Active()})
}

// refresh redraws the page currently shown.
func (c *Controller) refresh() {
	if !c.opened {
		return
	}
	c.renderer.Draw(DrawRequest{Date: c.renderer.Date(), Type: c.nav.Active()})
}

// ActivateCell handles a click on the cell for t: drill down when the
// calendar is coarser than the target, commit otherwise.
func (c *Controller) ActivateCell(t time.Time) {
	if c.destroyed || c.disabled || !c.opened {
		return
	}
	t = t.In(c.loc)
	if !c.state.IsSelectable(t, c.nav.Active()) {
		return
	}
	switch c.nav.Activate(t) {
	case granularity.ActionDrill:
		c.draw(t)
	case granularity.ActionCommit:
		c.commit(c.withTime(t))
		if c.autoClose {
			c.Close()
		}
	}
}

// withTime carries a time of day over to a clicked date: the time widget's
// hour and minute when present, else the previous value's clock.
func (c *Controller) withTime(t time.Time) time.Time {
	y, m, d := t.Date()
	if c.timeWidget != nil {
		return time.Date(y, m, d, c.timeWidget.Hour(), c.timeWidget.Minute(), 0, 0, c.loc)
	}
	if prev, ok := c.state.Value(); ok {
		return time.Date(y, m, d, prev.Hour(), prev.Minute(), prev.Second(), prev.Nanosecond(), c.loc)
	}
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

func (c *Controller) commit(t time.Time) bool {
	if !c.state.Commit(t) {
		return false
	}
	c.log.Info("date committed", "date", t)
	c.changed()
	return true
}

func (c *Controller) changed() {
	c.syncCollaborators()
	c.refresh()
	c.emit(Event{Kind: EventChange})
}

// syncCollaborators pushes the value to the input text and the time widget.
func (c *Controller) syncCollaborators() {
	c.syncing = true
	defer func() { c.syncing = false }()
	v, ok := c.state.Value()
	if c.input != nil {
		if ok {
			c.input.SetDate(v)
		} else {
			c.input.ClearText()
		}
	}
	if c.timeWidget != nil && ok {
		c.timeWidget.SetTime(v.Hour(), v.Minute())
	}
}

// SetDate commits v when it is selectable. A none value clears. It reports
// whether the value changed.
func (c *Controller) SetDate(v datelike.Value) bool {
	if c.destroyed {
		return false
	}
	t, ok, err := v.Resolve(c.loc)
	if err != nil {
		c.log.Debug("date ignored", "error", err)
		return false
	}
	if !ok {
		return c.SetNull()
	}
	return c.commit(t)
}

// SetNull clears the value and reports whether there was one.
func (c *Controller) SetNull() bool {
	if c.destroyed || !c.state.Clear() {
		return false
	}
	c.log.Info("date cleared")
	c.changed()
	return true
}

// Date returns the committed value.
func (c *Controller) Date() (time.Time, bool) { return c.state.Value() }

func (c *Controller) Type() granularity.Granularity { return c.state.Granularity() }

// ActiveType is the granularity currently drawn.
func (c *Controller) ActiveType() granularity.Granularity { return c.nav.Active() }

func (c *Controller) IsSelectable(v datelike.Value) bool {
	t, ok, err := v.Resolve(c.loc)
	if err != nil || !ok {
		return false
	}
	return c.state.IsSelectable(t, c.state.Granularity())
}

func (c *Controller) IsSelected(v datelike.Value) bool {
	t, ok, err := v.Resolve(c.loc)
	if err != nil || !ok {
		return false
	}
	return c.state.IsSelected(t, c.state.Granularity())
}

// Ranges returns a copy of the selectable ranges.
func (c *Controller) Ranges() *interval.Set { return c.state.Ranges().Clone() }

// SetRanges replaces the selectable ranges. As with
// Options.SelectableRanges, nil makes everything selectable and an empty
// non-nil slice makes nothing selectable.
func (c *Controller) SetRanges(pairs [][]datelike.Value) error {
	set, err := rangesFrom(pairs, c.loc)
	if err != nil {
		return err
	}
	c.state.ReplaceRanges(set)
	c.log.Info("ranges replaced", "ranges", set.String())
	c.rangesChanged()
	return nil
}

// SetRangeSet replaces the selectable ranges with a copy of set. A nil set
// makes everything selectable.
func (c *Controller) SetRangeSet(set *interval.Set) {
	if set == nil {
		set = interval.New([2]int64{MinTimestamp, MaxTimestamp})
	}
	c.state.ReplaceRanges(set.Clone())
	c.rangesChanged()
}

func (c *Controller) AddRange(start, end datelike.Value) error {
	a, b, err := rangePair(0, []datelike.Value{start, end}, c.loc)
	if err != nil {
		return err
	}
	c.state.Ranges().Add(a, b)
	c.log.Info("range added", "start", a, "end", b)
	c.rangesChanged()
	return nil
}

func (c *Controller) RemoveRange(start, end datelike.Value) error {
	a, b, err := rangePair(0, []datelike.Value{start, end}, c.loc)
	if err != nil {
		return err
	}
	c.state.Ranges().Subtract(a, b)
	c.log.Info("range removed", "start", a, "end", b)
	c.rangesChanged()
	return nil
}

func (c *Controller) rangesChanged() {
	if c.state.HasValue() && !c.state.CurrentSelectable() {
		c.SetNull()
		return
	}
	c.refresh()
}

// DrillUp shows the next coarser granularity.
func (c *Controller) DrillUp() bool {
	if !c.opened || c.disabled {
		return false
	}
	anchor := c.renderer.Date()
	if !c.nav.DrillUp(anchor) {
		return false
	}
	c.draw(anchor)
	return true
}

func (c *Controller) Next()     { c.page(c.renderer.NextDate) }
func (c *Controller) Prev()     { c.page(c.renderer.PrevDate) }
func (c *Controller) NextYear() { c.page(c.renderer.NextYearDate) }
func (c *Controller) PrevYear() { c.page(c.renderer.PrevYearDate) }

func (c *Controller) page(next func() time.Time) {
	if !c.opened || c.disabled {
		return
	}
	c.draw(next())
}

// Navigate shows the page containing t without changing granularity.
func (c *Controller) Navigate(t time.Time) {
	if !c.opened || c.disabled {
		return
	}
	c.draw(t.In(c.loc))
}

// SetDateFormat changes the input format and rewrites the input text.
func (c *Controller) SetDateFormat(format string) error {
	if c.input == nil {
		return missingError{what: "input adapter"}
	}
	if err := c.input.SetFormat(format); err != nil {
		return err
	}
	c.syncCollaborators()
	return nil
}

// AddOpener binds o so that activating it toggles the picker.
func (c *Controller) AddOpener(o Opener) {
	for _, b := range c.openers {
		if b.opener == o {
			return
		}
	}
	b := &openerBinding{opener: o}
	if !c.disabled {
		b.sub = o.OnActivate(c.Toggle)
	}
	c.openers = append(c.openers, b)
}

func (c *Controller) RemoveOpener(o Opener) {
	for i, b := range c.openers {
		if b.opener != o {
			continue
		}
		if b.sub != nil {
			b.sub.Unsubscribe()
		}
		c.openers = append(c.openers[:i:i], c.openers[i+1:]...)
		return
	}
}

// Enable re-attaches openers and the input after Disable.
func (c *Controller) Enable() {
	if c.destroyed || !c.disabled {
		return
	}
	c.disabled = false
	for _, b := range c.openers {
		b.sub = b.opener.OnActivate(c.Toggle)
	}
	if c.input != nil {
		c.input.Enable()
	}
	c.log.Debug("enabled")
	if c.showAlways {
		c.open()
	}
}

// Disable closes the picker, even an always-open one, and detaches its
// openers and input until Enable.
func (c *Controller) Disable() {
	if c.destroyed || c.disabled {
		return
	}
	c.disabled = true
	c.close()
	for _, b := range c.openers {
		if b.sub != nil {
			b.sub.Unsubscribe()
			b.sub = nil
		}
	}
	if c.input != nil {
		c.input.Disable()
	}
	c.log.Debug("disabled")
}

func (c *Controller) IsDisabled() bool { return c.disabled }

// Destroy releases every registration. The controller is inert afterwards.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.close()
	for _, b := range c.openers {
		if b.sub != nil {
			b.sub.Unsubscribe()
		}
	}
	c.openers = nil
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	c.subs = nil
	for _, h := range c.events {
		h.Reset()
	}
	c.destroyed = true
	c.log.Debug("destroyed")
}

func (c *Controller) onDrawn(d Drawn) {
	if c.destroyed {
		return
	}
	c.renderer.Decorate(c.decorate(d))
	c.emit(Event{Kind: EventDraw})
}

func (c *Controller) decorate(d Drawn) Decoration {
	dec := Decoration{Type: d.Type, Cells: make([]CellState, 0, len(d.Cells))}
	today := c.now().In(c.loc)
	var first, last time.Time
	inPage := false
	for _, cell := range d.Cells {
		dec.Cells = append(dec.Cells, CellState{
			Time:       cell.Time,
			Selectable: c.state.IsSelectable(cell.Time, d.Type),
			Selected:   c.state.IsSelected(cell.Time, d.Type),
			Today:      granularity.Same(today, cell.Time, d.Type),
		})
		if cell.Outside {
			continue
		}
		if !inPage || cell.Time.Before(first) {
			first = cell.Time
		}
		if !inPage || cell.Time.After(last) {
			last = cell.Time
		}
		inPage = true
	}
	lo, err := c.state.Ranges().Minimum()
	if err != nil {
		dec.HidePrev, dec.HideNext = true, true
		return dec
	}
	hi, _ := c.state.Ranges().Maximum()
	if inPage {
		pageStart, _ := granularity.SpanMillis(first, d.Type)
		_, pageEnd := granularity.SpanMillis(last, d.Type)
		dec.HidePrev = lo >= pageStart
		dec.HideNext = hi <= pageEnd
	}
	return dec
}

func (c *Controller) onTimeChanged() {
	if c.syncing || c.disabled {
		return
	}
	v, ok := c.state.Value()
	if !ok {
		return
	}
	y, m, d := v.Date()
	c.commit(time.Date(y, m, d, c.timeWidget.Hour(), c.timeWidget.Minute(), 0, 0, c.loc))
}

func (c *Controller) onInputChanged() {
	if c.syncing || c.disabled {
		return
	}
	t, err := c.input.Date()
	switch {
	case errors.Is(err, ErrEmptyInput):
		c.SetNull()
		return
	case err != nil:
		perr := newParsingError(err)
		c.log.Debug("input rejected", "error", err)
		c.emit(Event{Kind: EventError, Err: perr})
		c.syncCollaborators()
		return
	}
	t = t.In(c.loc)
	if !c.state.IsSelectable(t, c.state.Granularity()) {
		c.syncCollaborators()
		return
	}
	if !c.commit(t) {
		c.syncCollaborators()
	}
}

func (c *Controller) onInputActivated() {
	c.Open()
}

// onOutside closes the picker for interactions that none of its parts
// claim.
func (c *Controller) onOutside(target Target) {
	if c.owns(target) {
		return
	}
	c.Close()
}

func (c *Controller) owns(target Target) bool {
	if target == nil {
		return false
	}
	candidates := []any{c.renderer, c.timeWidget, c.input}
	for _, b := range c.openers {
		candidates = append(candidates, b.opener)
	}
	for _, x := range candidates {
		if x == nil {
			continue
		}
		if o, ok := x.(Owner); ok && o.Owns(target) {
			return true
		}
	}
	return false
}
