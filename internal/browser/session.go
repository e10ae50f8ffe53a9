// Package browser abstracts the automation session the flight search drives.
// A Session is a single remote page; every operation is synchronous and the
// session is owned by one search at a time.
package browser

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTimeout is returned when an element does not appear within the wait budget.
	ErrTimeout = errors.New("browser: wait timed out")
	// ErrNotFound is returned when a locator matches nothing on the current page.
	ErrNotFound = errors.New("browser: element not found")
)

// Locator addresses an element on the page by CSS selector.
type Locator string

// Key is a non-text key sent to an element.
type Key string

const (
	KeyEnter  Key = "Enter"
	KeyEscape Key = "Escape"
	KeyTab    Key = "Tab"
)

// Element is a handle to a located element on the current page.
type Element interface {
	Click(ctx context.Context) error
	// Type sends text input to the element.
	Type(ctx context.Context, text string) error
	SendKey(ctx context.Context, key Key) error
	// DragByOffset presses on the element center, moves by (dx, dy) pixels
	// and releases.
	DragByOffset(ctx context.Context, dx, dy int) error
	// Attr returns the named attribute value, or "" when absent.
	Attr(ctx context.Context, name string) (string, error)
	Text(ctx context.Context) (string, error)
	// Width returns the rendered pixel width of the element.
	Width(ctx context.Context) (float64, error)
}

// Session is one automation session. Implementations are not safe for
// concurrent use. Close must be safe to call after any failure.
type Session interface {
	Navigate(ctx context.Context, url string) error
	// Find waits up to timeout for the locator to match a visible element.
	// It returns ErrTimeout or ErrNotFound (wrapped) on failure.
	Find(ctx context.Context, loc Locator, timeout time.Duration) (Element, error)
	Close() error
}
