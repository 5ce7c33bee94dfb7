// Package errors provides structured error handling for the Curvy toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindSkin indicates a semantic failure in a skin description.
	KindSkin
	// KindAsset indicates an asset resolution or decode failure.
	KindAsset
	// KindBundle indicates an app bundle manifest error.
	KindBundle
	// KindFont indicates a font loading or parsing error.
	KindFont
	// KindAction indicates an action handler failure.
	KindAction
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindSkin:
		return "skin"
	case KindAsset:
		return "asset"
	case KindBundle:
		return "bundle"
	case KindFont:
		return "font"
	case KindAction:
		return "action"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ToolkitError represents a structured error in the Curvy toolkit.
type ToolkitError struct {
	// Op is the operation that failed (e.g., "skin.Builder.Build").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ToolkitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ToolkitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Controller.PointerDown").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ToolkitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
