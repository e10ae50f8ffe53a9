package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// StaticSession replays canned HTML pages and resolves locators with CSS
// selectors, so the search pipeline can run without a browser. Actions are
// recorded instead of applied; an optional OnDrag hook lets a page react to
// slider drags by mutating attributes.
type StaticSession struct {
	pages      map[string]string
	current    *goquery.Document
	currentURL string
	closed     bool

	// Actions is the ordered log of everything the caller did.
	Actions []string
	// OnDrag, when set, is invoked after a drag is recorded.
	OnDrag func(loc Locator, dx, dy int)
}

// NewStaticSession builds a session over a url -> HTML page map.
func NewStaticSession(pages map[string]string) *StaticSession {
	return &StaticSession{pages: pages}
}

// Navigate switches the current page. Unknown URLs produce an empty page, so
// subsequent finds fail with ErrNotFound rather than the navigation itself.
func (s *StaticSession) Navigate(_ context.Context, url string) error {
	if s.closed {
		return fmt.Errorf("session is closed")
	}
	html := s.pages[url]
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse page %s: %w", url, err)
	}
	s.current = doc
	s.currentURL = url
	s.record("navigate %s", url)
	return nil
}

// Find resolves the locator against the current page. There is nothing to
// wait for in a static page, so the timeout is ignored.
func (s *StaticSession) Find(_ context.Context, loc Locator, _ time.Duration) (Element, error) {
	if s.closed {
		return nil, fmt.Errorf("session is closed")
	}
	if s.current == nil {
		return nil, fmt.Errorf("%w: no page loaded", ErrNotFound)
	}
	sel := s.current.Find(string(loc))
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, loc)
	}
	return &staticElement{session: s, loc: loc, sel: sel.First()}, nil
}

// Close marks the session closed. Closing twice is an error, which the tests
// use to prove the search closes exactly once.
func (s *StaticSession) Close() error {
	if s.closed {
		return fmt.Errorf("session already closed")
	}
	s.closed = true
	s.record("close")
	return nil
}

// Closed reports whether Close has been called.
func (s *StaticSession) Closed() bool { return s.closed }

// SetAttr updates an attribute on the first match of loc. OnDrag hooks use it
// to make a page react to a drag.
func (s *StaticSession) SetAttr(loc Locator, name, value string) error {
	if s.current == nil {
		return fmt.Errorf("%w: no page loaded", ErrNotFound)
	}
	sel := s.current.Find(string(loc))
	if sel.Length() == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, loc)
	}
	sel.First().SetAttr(name, value)
	return nil
}

func (s *StaticSession) record(format string, args ...interface{}) {
	s.Actions = append(s.Actions, fmt.Sprintf(format, args...))
}

type staticElement struct {
	session *StaticSession
	loc     Locator
	sel     *goquery.Selection
}

func (e *staticElement) Click(_ context.Context) error {
	e.session.record("click %s", e.loc)
	return nil
}

func (e *staticElement) Type(_ context.Context, text string) error {
	e.session.record("type %s %q", e.loc, text)
	e.sel.SetAttr("value", text)
	return nil
}

func (e *staticElement) SendKey(_ context.Context, key Key) error {
	e.session.record("key %s %s", e.loc, key)
	return nil
}

func (e *staticElement) DragByOffset(_ context.Context, dx, dy int) error {
	e.session.record("drag %s %d,%d", e.loc, dx, dy)
	if e.session.OnDrag != nil {
		e.session.OnDrag(e.loc, dx, dy)
	}
	return nil
}

func (e *staticElement) Attr(_ context.Context, name string) (string, error) {
	value, _ := e.sel.Attr(name)
	return value, nil
}

func (e *staticElement) Text(_ context.Context) (string, error) {
	return strings.TrimSpace(e.sel.Text()), nil
}

// Width reads the data-track-width attribute, since a static page has no
// layout to measure.
func (e *staticElement) Width(ctx context.Context) (float64, error) {
	value, err := e.Attr(ctx, "data-track-width")
	if err != nil || value == "" {
		return 0, fmt.Errorf("element %q has no data-track-width", e.loc)
	}
	var width float64
	if _, err := fmt.Sscanf(value, "%f", &width); err != nil {
		return 0, fmt.Errorf("bad data-track-width %q on %q: %w", value, e.loc, err)
	}
	return width, nil
}
