package browser

import (
	"context"
	"errors"
	"testing"
	"time"
)

const testPage = `
<html><body>
  <input id="origin" aria-label="Where from?" value="">
  <div id="price" role="slider" aria-valuemin="0" aria-valuemax="1000"
       aria-valuenow="1000" data-track-width="500"></div>
  <span id="label">  Nonstop only  </span>
</body></html>`

func newTestSession(t *testing.T) *StaticSession {
	t.Helper()
	s := NewStaticSession(map[string]string{"https://flights.test/": testPage})
	if err := s.Navigate(context.Background(), "https://flights.test/"); err != nil {
		t.Fatalf("Navigate() error: %v", err)
	}
	return s
}

func TestStaticSessionFind(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	if _, err := s.Find(ctx, "#origin", time.Second); err != nil {
		t.Errorf("Find(#origin) error: %v", err)
	}

	_, err := s.Find(ctx, "#missing", time.Second)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(#missing) error = %v, want ErrNotFound", err)
	}
}

func TestStaticSessionUnknownURL(t *testing.T) {
	s := NewStaticSession(nil)
	ctx := context.Background()

	if err := s.Navigate(ctx, "https://nowhere.test/"); err != nil {
		t.Fatalf("Navigate() error: %v", err)
	}
	if _, err := s.Find(ctx, "body *", time.Second); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find on empty page error = %v, want ErrNotFound", err)
	}
}

func TestStaticElementAttrAndText(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	slider, err := s.Find(ctx, `#price`, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := slider.Attr(ctx, "aria-valuemax"); v != "1000" {
		t.Errorf("aria-valuemax = %q, want 1000", v)
	}
	if v, _ := slider.Attr(ctx, "no-such-attr"); v != "" {
		t.Errorf("missing attribute = %q, want empty", v)
	}
	if w, err := slider.Width(ctx); err != nil || w != 500 {
		t.Errorf("Width() = %v, %v; want 500", w, err)
	}

	label, err := s.Find(ctx, "#label", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if text, _ := label.Text(ctx); text != "Nonstop only" {
		t.Errorf("Text() = %q, want trimmed label", text)
	}
}

func TestStaticSessionRecordsActions(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	field, _ := s.Find(ctx, "#origin", time.Second)
	field.Type(ctx, "SFO")
	field.SendKey(ctx, KeyEnter)

	var dragged Locator
	s.OnDrag = func(loc Locator, dx, dy int) { dragged = loc }
	slider, _ := s.Find(ctx, "#price", time.Second)
	slider.DragByOffset(ctx, -150, 0)

	want := []string{
		"navigate https://flights.test/",
		`type #origin "SFO"`,
		"key #origin Enter",
		"drag #price -150,0",
	}
	if len(s.Actions) != len(want) {
		t.Fatalf("recorded %d actions, want %d: %v", len(s.Actions), len(want), s.Actions)
	}
	for i, action := range want {
		if s.Actions[i] != action {
			t.Errorf("action[%d] = %q, want %q", i, s.Actions[i], action)
		}
	}
	if dragged != "#price" {
		t.Errorf("OnDrag saw %q, want #price", dragged)
	}

	// Typed text is visible on re-read.
	again, _ := s.Find(ctx, "#origin", time.Second)
	if v, _ := again.Attr(ctx, "value"); v != "SFO" {
		t.Errorf("value after type = %q, want SFO", v)
	}
}

func TestStaticSessionCloseTwice(t *testing.T) {
	s := newTestSession(t)
	if err := s.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := s.Close(); err == nil {
		t.Error("second Close() should error")
	}
	if _, err := s.Find(context.Background(), "#origin", time.Second); err == nil {
		t.Error("Find() after Close() should error")
	}
}
