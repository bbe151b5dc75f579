package ui

import "errors"

// Capacity errors. The limits are set through Config; the engine never
// grows past them and never drops commands silently.
var (
	ErrCommandOverflow   = errors.New("ui: command buffer overflow")
	ErrContainerOverflow = errors.New("ui: container registry full")
	ErrLayoutOverflow    = errors.New("ui: layout stack overflow")
	ErrLayoutUnderflow   = errors.New("ui: layout stack underflow")
	ErrScissorOverflow   = errors.New("ui: scissor stack overflow")
	ErrScissorUnderflow  = errors.New("ui: scissor stack underflow")
)

// Misuse errors.
var (
	ErrNoContainer   = errors.New("ui: widget declared outside a window")
	ErrWindowNested  = errors.New("ui: window begun while another is open")
	ErrWindowNotOpen = errors.New("ui: window end without a matching begin")
	ErrUnbalanced    = errors.New("ui: frame ended with open windows or stacks")
)
