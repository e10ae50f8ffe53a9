package browser

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// ChromeOptions configure the Chrome process behind a live session.
type ChromeOptions struct {
	// ExecPath overrides the browser binary. Empty means auto-detect.
	ExecPath string
	Headless bool
}

// ChromeSession drives a real Chrome instance over the DevTools protocol.
type ChromeSession struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewChromeSession starts a browser process and returns a live session.
// Startup failures surface here rather than on the first action.
func NewChromeSession(parent context.Context, opts ChromeOptions) (*ChromeSession, error) {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(ctx); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &ChromeSession{ctx: ctx, cancelCtx: cancelCtx, cancelAlloc: cancelAlloc}, nil
}

// Navigate loads the given URL and waits for the navigation to commit.
func (s *ChromeSession) Navigate(_ context.Context, url string) error {
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Find waits up to timeout for the locator to match a visible element.
func (s *ChromeSession) Find(_ context.Context, loc Locator, timeout time.Duration) (Element, error) {
	waitCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(string(loc), chromedp.ByQuery)); err != nil {
		if waitCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: waited %s for %q", ErrTimeout, timeout, loc)
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrNotFound, loc, err)
	}

	return &chromeElement{session: s, loc: loc}, nil
}

// Close tears down the tab and the browser process.
func (s *ChromeSession) Close() error {
	s.cancelCtx()
	s.cancelAlloc()
	return nil
}

type chromeElement struct {
	session *ChromeSession
	loc     Locator
}

func (e *chromeElement) Click(_ context.Context) error {
	return chromedp.Run(e.session.ctx, chromedp.Click(string(e.loc), chromedp.ByQuery))
}

func (e *chromeElement) Type(_ context.Context, text string) error {
	return chromedp.Run(e.session.ctx, chromedp.SendKeys(string(e.loc), text, chromedp.ByQuery))
}

func (e *chromeElement) SendKey(_ context.Context, key Key) error {
	var seq string
	switch key {
	case KeyEnter:
		seq = kb.Enter
	case KeyEscape:
		seq = kb.Escape
	case KeyTab:
		seq = kb.Tab
	default:
		return fmt.Errorf("unsupported key %q", key)
	}
	return chromedp.Run(e.session.ctx, chromedp.SendKeys(string(e.loc), seq, chromedp.ByQuery))
}

func (e *chromeElement) Attr(_ context.Context, name string) (string, error) {
	var value string
	var ok bool
	err := chromedp.Run(e.session.ctx,
		chromedp.AttributeValue(string(e.loc), name, &value, &ok, chromedp.ByQuery))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

func (e *chromeElement) Text(_ context.Context) (string, error) {
	var text string
	if err := chromedp.Run(e.session.ctx, chromedp.Text(string(e.loc), &text, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

type boundingRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (e *chromeElement) rect() (boundingRect, error) {
	var r boundingRect
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) { return {x: 0, y: 0, width: 0, height: 0}; }
		const r = el.getBoundingClientRect();
		return {x: r.x, y: r.y, width: r.width, height: r.height};
	})()`, strconv.Quote(string(e.loc)))
	if err := chromedp.Run(e.session.ctx, chromedp.Evaluate(expr, &r)); err != nil {
		return r, fmt.Errorf("failed to measure %q: %w", e.loc, err)
	}
	return r, nil
}

func (e *chromeElement) Width(_ context.Context) (float64, error) {
	r, err := e.rect()
	if err != nil {
		return 0, err
	}
	return r.Width, nil
}

// DragByOffset performs a press-move-release sequence starting at the element
// center, which is how range sliders expect to be moved.
func (e *chromeElement) DragByOffset(_ context.Context, dx, dy int) error {
	r, err := e.rect()
	if err != nil {
		return err
	}
	if r.Width == 0 && r.Height == 0 {
		return fmt.Errorf("%w: %q has no layout box", ErrNotFound, e.loc)
	}

	fromX := r.X + r.Width/2
	fromY := r.Y + r.Height/2
	toX := fromX + float64(dx)
	toY := fromY + float64(dy)

	return chromedp.Run(e.session.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		press := input.DispatchMouseEvent(input.MousePressed, fromX, fromY).
			WithButton(input.Left).
			WithClickCount(1)
		if err := press.Do(ctx); err != nil {
			return err
		}
		move := input.DispatchMouseEvent(input.MouseMoved, toX, toY).
			WithButton(input.Left)
		if err := move.Do(ctx); err != nil {
			return err
		}
		release := input.DispatchMouseEvent(input.MouseReleased, toX, toY).
			WithButton(input.Left).
			WithClickCount(1)
		return release.Do(ctx)
	}))
}
