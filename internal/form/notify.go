package form

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notifier is the feedback surface the controller reports through.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Modal is an acknowledgeable dialog provided by the presentation layer.
// Implementations must move focus to a dismiss control when shown and
// restore the previously focused control when dismissed.
type Modal interface {
	Show(message string, severity Severity)
}

// NewNotifier prefers the modal when one is available and otherwise
// falls back to an inline auto-dismissing notice.
func NewNotifier(modal Modal, fallback *InlineNotice) Notifier {
	if modal != nil {
		return modalNotifier{modal: modal}
	}

	return fallback
}

type modalNotifier struct {
	modal Modal
}

func (n modalNotifier) Notify(message string, severity Severity) {
	n.modal.Show(message, severity)
}

// DefaultNoticeTTL is how long an inline notice stays visible.
const DefaultNoticeTTL = 2500 * time.Millisecond

// InlineNotice holds the latest notice and clears it after a TTL.
// A new notice replaces the current one and restarts the timer.
type InlineNotice struct {
	mu       sync.Mutex
	ttl      time.Duration
	message  string
	severity Severity
	timer    *time.Timer
}

func NewInlineNotice(ttl time.Duration) *InlineNotice {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}

	return &InlineNotice{ttl: ttl}
}

func (n *InlineNotice) Notify(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.message = message
	n.severity = severity

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, n.clear)
}

// Current returns the visible notice, if any.
func (n *InlineNotice) Current() (message string, severity Severity, visible bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.message, n.severity, n.message != ""
}

func (n *InlineNotice) clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.message = ""
	n.severity = ""
}
