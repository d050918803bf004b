package contact

import "context"

// Status is the submission state of a Form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Notices shown after a submission settles.
const (
	NoticeSuccess = "Thank you for your message! We'll get back to you soon."
	NoticeError   = "Something went wrong. Please try again later."
)

// Sender delivers a submission on behalf of a Form.
type Sender interface {
	Send(ctx context.Context, s Submission) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, s Submission) error

func (f SenderFunc) Send(ctx context.Context, s Submission) error { return f(ctx, s) }

// Form holds the transient state of one contact form. It is not safe for
// concurrent use.
type Form struct {
	values    Submission
	errs      FieldErrors
	status    Status
	validated bool
}

// NewForm returns an empty idle form.
func NewForm() *Form {
	return &Form{}
}

// Set edits a field and reports whether the field exists. After a failed
// submit, edits re-validate the edited field.
func (f *Form) Set(field, value string) bool {
	next, ok := f.values.With(field, value)
	if !ok {
		return false
	}
	f.values = next
	if f.validated {
		f.revalidate(field)
	}
	return true
}

func (f *Form) revalidate(field string) {
	errs := Validate(f.values)
	if msgs, ok := errs[field]; ok {
		if f.errs == nil {
			f.errs = FieldErrors{}
		}
		f.errs[field] = msgs
		return
	}
	delete(f.errs, field)
}

func (f *Form) Value(field string) string { return f.values.Get(field) }
func (f *Form) Values() Submission        { return f.values }
func (f *Form) Status() Status            { return f.status }
func (f *Form) Submitting() bool          { return f.status == StatusSubmitting }

// Error returns the first validation message for field.
func (f *Form) Error(field string) string { return f.errs.First(field) }

// Errors returns the current per-field validation messages.
func (f *Form) Errors() FieldErrors { return f.errs }

// SetErrors replaces the per-field messages, as when a server returns
// detail for a form it rendered.
func (f *Form) SetErrors(errs FieldErrors) {
	f.errs = errs
	f.validated = len(errs) > 0
}

// Notice returns the user-facing notice for the current status.
func (f *Form) Notice() string {
	switch f.status {
	case StatusSuccess:
		return NoticeSuccess
	case StatusError:
		return NoticeError
	default:
		return ""
	}
}

// Begin validates the form and, when valid, moves it to submitting and
// returns the values to send. A second Begin while submitting is refused.
// Invalid forms keep their status and get per-field errors.
func (f *Form) Begin() (Submission, bool) {
	if f.status == StatusSubmitting {
		return Submission{}, false
	}
	if errs := Validate(f.values); errs != nil {
		f.errs = errs
		f.validated = true
		return Submission{}, false
	}
	f.errs = nil
	f.status = StatusSubmitting
	return f.values, true
}

// Finish settles a submission started by Begin. Success clears the fields;
// failure keeps them.
func (f *Form) Finish(err error) Status {
	if f.status != StatusSubmitting {
		return f.status
	}
	if err != nil {
		f.status = StatusError
		return f.status
	}
	f.values = Submission{}
	f.validated = false
	f.status = StatusSuccess
	return f.status
}

// Submit runs Begin, sends through s and settles with Finish.
func (f *Form) Submit(ctx context.Context, s Sender) Status {
	values, ok := f.Begin()
	if !ok {
		return f.status
	}
	return f.Finish(s.Send(ctx, values))
}
