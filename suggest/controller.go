package suggest

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/ghostline/caret"
	"github.com/iw2rmb/ghostline/completion"
	"github.com/iw2rmb/ghostline/internal/debounce"
	"github.com/iw2rmb/ghostline/internal/device"
	"github.com/iw2rmb/ghostline/internal/logging"
	"github.com/iw2rmb/ghostline/surface"
)

const (
	DefaultDelay   = 2000 * time.Millisecond
	DefaultTimeout = 30 * time.Second
)

type Options struct {
	Provider completion.Provider
	// Device selects the accept key (Tab, or Space on touch devices).
	Device device.Capabilities

	// Delay is the completion debounce window. Zero means DefaultDelay.
	Delay time.Duration
	// CursorDelay debounces cursor activity. Zero means Delay.
	CursorDelay time.Duration
	// Timeout bounds a single provider call. Zero means DefaultTimeout.
	Timeout time.Duration

	Prompt   string
	Disabled bool

	// Context is the parent of every provider call. Nil means
	// context.Background().
	Context context.Context
	Logger  *zap.Logger

	// OnTransition observes every state change, including the transient
	// StateAccepted.
	OnTransition func(from, to State)
}

var lastControllerID int64

// resultMsg carries a provider answer back to the update loop.
type resultMsg struct {
	controller int
	req        completion.Request
	text       string
	err        error
}

type Controller struct {
	id      int
	surf    *surface.Surface
	tracker caret.Tracker

	provider completion.Provider
	accept   key.Binding
	input    *debounce.Timer
	cursor   *debounce.Timer
	timeout  time.Duration
	ctx      context.Context
	logger   *zap.Logger
	observe  func(from, to State)

	// cursorTied keeps the cursor window equal to the input window.
	cursorTied bool

	prompt       string
	disabled     bool
	blurred      bool
	inFlight     bool
	lastPosition int
	state        State
}

func New(s *surface.Surface, opts Options) *Controller {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	cursorDelay := opts.CursorDelay
	if cursorDelay <= 0 {
		cursorDelay = delay
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.OrNop(opts.Logger)

	return &Controller{
		id:       int(atomic.AddInt64(&lastControllerID, 1)),
		surf:     s,
		tracker:  caret.New(s),
		provider: opts.Provider,
		accept:   opts.Device.AcceptKey(),
		input:      debounce.New(delay),
		cursor:     debounce.New(cursorDelay),
		cursorTied: opts.CursorDelay <= 0,
		timeout:    timeout,
		ctx:        ctx,
		logger:     logger,
		observe:    opts.OnTransition,
		prompt:     opts.Prompt,
		disabled:   opts.Disabled,
	}
}

func (c *Controller) State() State { return c.state }

// Suggestion returns what is currently shown, if anything.
func (c *Controller) Suggestion() (Suggestion, bool) {
	text, off, ok := c.surf.Marker()
	if !ok {
		return Suggestion{}, false
	}
	return Suggestion{Text: text, InsertionPoint: off}, true
}

// InFlight reports whether a provider call is outstanding.
func (c *Controller) InFlight() bool { return c.inFlight }

// LastPosition is the caret position recorded by the last input or
// effective cursor move.
func (c *Controller) LastPosition() int { return c.lastPosition }

func (c *Controller) Provider() completion.Provider { return c.provider }

// SetProvider swaps the provider used by future requests.
func (c *Controller) SetProvider(p completion.Provider) { c.provider = p }

func (c *Controller) Delay() time.Duration { return c.input.Delay() }

// SetDelay changes the completion debounce window for future triggers. Zero
// means DefaultDelay. An open window keeps its original deadline.
func (c *Controller) SetDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultDelay
	}
	c.input.SetDelay(d)
	if c.cursorTied {
		c.cursor.SetDelay(d)
	}
}

func (c *Controller) Prompt() string { return c.prompt }

// SetPrompt sets the style prompt sent with future requests.
func (c *Controller) SetPrompt(p string) { c.prompt = p }

// AcceptKey returns the binding that accepts a shown suggestion.
func (c *Controller) AcceptKey() key.Binding { return c.accept }

func (c *Controller) Disabled() bool { return c.disabled }

// SetDisabled turns suggestions off or back on. Disabling cancels both
// debounce windows and clears the shown suggestion; a request already in
// flight is left to finish and its answer is dropped.
func (c *Controller) SetDisabled(v bool) {
	if c.disabled == v {
		return
	}
	c.disabled = v
	if v {
		c.input.Cancel()
		c.cursor.Cancel()
		c.Clear()
	}
}

// HandleInput reacts to a content edit: the shown suggestion is dropped and
// a completion is scheduled for the current before/after text.
func (c *Controller) HandleInput() tea.Cmd {
	c.blurred = false
	c.Clear()
	if c.disabled {
		return nil
	}
	c.lastPosition = c.tracker.Position().Position
	return c.schedule()
}

// HandleCursorActivity reports a click, key release or focus. It is
// debounced; when the window closes and the caret has moved since the last
// recorded position, it behaves like input.
func (c *Controller) HandleCursorActivity() tea.Cmd {
	if c.disabled {
		return nil
	}
	return c.cursor.Trigger(nil)
}

// HandleKey must see every key press before the host acts on it. When a
// suggestion is shown and msg is the accept key the suggestion is committed
// and handled is true; the host must then ignore the key. Any other key
// discards the suggestion.
func (c *Controller) HandleKey(msg tea.KeyMsg) (handled bool) {
	if c.surf.HasMarker() && key.Matches(msg, c.accept) {
		return c.Accept()
	}
	c.Clear()
	return false
}

// HandleFocus marks the host focused and counts as cursor activity.
func (c *Controller) HandleFocus() tea.Cmd {
	c.blurred = false
	return c.HandleCursorActivity()
}

// HandleBlur discards the shown suggestion. Answers arriving while blurred
// are dropped.
func (c *Controller) HandleBlur() {
	c.blurred = true
	c.Clear()
}

// Clear removes the shown suggestion. It is a no-op when nothing is shown.
func (c *Controller) Clear() {
	if c.surf.RemoveMarker() {
		c.surf.Normalize()
	}
	c.settle()
}

// Accept commits the shown suggestion as content and puts the caret after
// it. It reports false when nothing is shown.
func (c *Controller) Accept() bool {
	text, ok := c.surf.CommitMarker()
	if !ok {
		return false
	}
	c.surf.Normalize()
	c.logger.Debug("suggestion accepted", zap.Int("len", len(text)))
	c.setState(StateAccepted)
	c.settle()
	return true
}

// Update handles the controller's own messages. It reports whether msg was
// one of them.
func (c *Controller) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.Msg:
		switch {
		case c.input.Owns(msg):
			if !c.input.Fire(msg) {
				return true, nil
			}
			req, _ := msg.Payload.(completion.Request)
			return true, c.request(req)
		case c.cursor.Owns(msg):
			if !c.cursor.Fire(msg) {
				return true, nil
			}
			return true, c.cursorSettled()
		}
	case resultMsg:
		if msg.controller != c.id {
			return false, nil
		}
		c.result(msg)
		return true, nil
	}
	return false, nil
}

func (c *Controller) schedule() tea.Cmd {
	before, after := c.tracker.Split()
	cmd := c.input.Trigger(completion.Request{Before: before, After: after})
	c.settle()
	return cmd
}

func (c *Controller) cursorSettled() tea.Cmd {
	if c.disabled {
		return nil
	}
	pos := c.tracker.Position().Position
	if pos == c.lastPosition {
		return nil
	}
	c.lastPosition = pos
	c.Clear()
	return c.schedule()
}

// request starts a provider call unless one is already outstanding. A
// dropped tick is not retried.
func (c *Controller) request(req completion.Request) tea.Cmd {
	if c.disabled {
		c.settle()
		return nil
	}
	if c.inFlight {
		c.logger.Debug("completion skipped, request in flight")
		c.settle()
		return nil
	}
	if c.provider == nil {
		c.logger.Debug("completion skipped, no provider")
		c.settle()
		return nil
	}

	c.inFlight = true
	c.settle()

	req.Prompt = c.prompt
	provider, parent, timeout, id := c.provider, c.ctx, c.timeout, c.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		text, err := provider.GetCompletion(ctx, req.Before, req.After, req.Prompt)
		return resultMsg{controller: id, req: req, text: text, err: err}
	}
}

func (c *Controller) result(msg resultMsg) {
	c.inFlight = false
	defer c.settle()

	if msg.err != nil {
		c.logger.Warn("completion failed", zap.Error(msg.err))
		return
	}
	if msg.text == "" || c.disabled || c.blurred {
		return
	}

	text := AdjustSpacing(msg.text, msg.req.Before, msg.req.After)
	// Placed at the caret as it is now, which may differ from where the
	// request was captured.
	if !c.surf.InsertMarker(text) {
		c.logger.Debug("suggestion dropped, no caret")
		return
	}
	c.logger.Debug("suggestion shown",
		zap.Int("position", c.tracker.Position().Position),
		zap.Int("len", len(text)),
	)
}

// settle derives the resting state from the surface, timers and the
// in-flight flag.
func (c *Controller) settle() {
	switch {
	case c.surf.HasMarker():
		c.setState(StateShown)
	case c.input.Pending() || c.inFlight:
		c.setState(StatePending)
	default:
		c.setState(StateIdle)
	}
}

func (c *Controller) setState(to State) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.logger.Debug("suggestion state", zap.Stringer("from", from), zap.Stringer("to", to))
	if c.observe != nil {
		c.observe(from, to)
	}
}
