package components

// ResizeTarget is a textarea whose height can be driven from outside.
type ResizeTarget interface {
	ResetHeight()
	SetHeight(px int)
}

// AutoResizer grows a textarea to fit its content while attached. It mirrors
// the listener the site script installs on data-autoresize textareas.
type AutoResizer struct {
	target   ResizeTarget
	attached bool
}

// NewAutoResizer creates a detached resizer for target.
func NewAutoResizer(target ResizeTarget) *AutoResizer {
	return &AutoResizer{target: target}
}

// Attach starts listening and sizes the target to its current content.
func (r *AutoResizer) Attach(scrollHeight int) {
	r.attached = true
	r.Input(scrollHeight)
}

// Input handles one input event. It returns false when detached.
func (r *AutoResizer) Input(scrollHeight int) bool {
	if !r.attached {
		return false
	}
	r.target.ResetHeight()
	r.target.SetHeight(scrollHeight)
	return true
}

// Detach stops listening. Later input is ignored.
func (r *AutoResizer) Detach() {
	r.attached = false
}

// Attached reports whether the resizer is listening.
func (r *AutoResizer) Attached() bool {
	return r.attached
}
