package contactclient

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the contact form's UI state.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still running. Disabling the submit control while in
// StateSubmitting is the caller's only other guard.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Fields holds the editable form field values.
type Fields struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// Form drives the contact form through idle → submitting → {success, error}
// and back to idle. After a successful submit the fields are cleared and the
// form returns to idle once ResetDelay elapses; an error state reverts to
// idle on its own after ErrorDismissDelay unless dismissed sooner. A request
// already in flight cannot be cancelled.
type Form struct {
	mu       sync.Mutex
	state    State
	fields   Fields
	client   *Client
	onChange func(State)

	resetDelay        time.Duration
	errorDismissDelay time.Duration
	resetTimer        *time.Timer
	errorTimer        *time.Timer
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithResetDelay overrides the delay between a successful submit and the
// field reset.
func WithResetDelay(d time.Duration) FormOption {
	return func(f *Form) { f.resetDelay = d }
}

// WithErrorDismissDelay overrides how long the error state lingers before
// reverting to idle.
func WithErrorDismissDelay(d time.Duration) FormOption {
	return func(f *Form) { f.errorDismissDelay = d }
}

// WithOnChange registers a callback invoked after every state transition.
func WithOnChange(fn func(State)) FormOption {
	return func(f *Form) { f.onChange = fn }
}

// NewForm creates a Form in the idle state.
func NewForm(client *Client, opts ...FormOption) *Form {
	f := &Form{
		state:             StateIdle,
		client:            client,
		resetDelay:        time.Second,
		errorDismissDelay: 3 * time.Second,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// State returns the current UI state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns a copy of the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetFields replaces the field values. Fields stay editable in every state;
// the submit guard is the only concurrency protection.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Submit sends the current field values to the service and blocks until the
// outcome is known. It returns ErrSubmitInFlight if another submission is
// running, the transport or API error on failure, and nil on success.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.stopTimersLocked()
	f.setStateLocked(StateSubmitting)
	req := SubmitRequest{
		Name:    f.fields.Name,
		Email:   f.fields.Email,
		Phone:   f.fields.Phone,
		Service: f.fields.Service,
		Message: f.fields.Message,
	}
	f.mu.Unlock()

	_, err := f.client.Submit(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.setStateLocked(StateError)
		f.errorTimer = time.AfterFunc(f.errorDismissDelay, f.revertError)
		return err
	}

	f.setStateLocked(StateSuccess)
	f.resetTimer = time.AfterFunc(f.resetDelay, f.resetAfterSuccess)
	return nil
}

// Dismiss returns the form to idle from success or error, cancelling any
// pending timer. Dismissing success also clears the fields.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateSuccess:
		f.stopTimersLocked()
		f.fields = Fields{}
		f.setStateLocked(StateIdle)
	case StateError:
		f.stopTimersLocked()
		f.setStateLocked(StateIdle)
	}
}

// resetAfterSuccess clears the fields and returns to idle once the
// post-success delay elapses.
func (f *Form) resetAfterSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSuccess {
		return
	}
	f.fields = Fields{}
	f.setStateLocked(StateIdle)
}

// revertError drops the error banner if it was never dismissed.
func (f *Form) revertError() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateError {
		return
	}
	f.setStateLocked(StateIdle)
}

func (f *Form) setStateLocked(s State) {
	f.state = s
	if f.onChange != nil {
		f.onChange(s)
	}
}

func (f *Form) stopTimersLocked() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
	if f.errorTimer != nil {
		f.errorTimer.Stop()
		f.errorTimer = nil
	}
}
