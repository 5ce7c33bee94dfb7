package bundle

import "fmt"

// NotFoundError reports a bundle path that is not a directory.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bundle not found: %s", e.Path)
}

// NoManifestError reports a bundle directory without an app.toml.
type NoManifestError struct {
	Path string
}

func (e *NoManifestError) Error() string {
	return fmt.Sprintf("app.toml not found in: %s", e.Path)
}

// MissingFieldError reports a required manifest field left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("app.toml missing required field: %s", e.Field)
}

// SkinNotFoundError reports a manifest pointing at a missing skin file.
type SkinNotFoundError struct {
	Path string
}

func (e *SkinNotFoundError) Error() string {
	return fmt.Sprintf("skin not found: %s", e.Path)
}

// FontNotFoundError reports a manifest pointing at a missing font file.
type FontNotFoundError struct {
	Path string
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("font not found: %s", e.Path)
}

// ScriptNotFoundError reports an action table entry pointing at a
// missing script file.
type ScriptNotFoundError struct {
	Action string
	Path   string
}

func (e *ScriptNotFoundError) Error() string {
	return fmt.Sprintf("script for action %q not found: %s", e.Action, e.Path)
}

// IncompatibleEngineError reports a bundle requiring a newer toolkit.
type IncompatibleEngineError struct {
	Required string
	Engine   string
}

func (e *IncompatibleEngineError) Error() string {
	return fmt.Sprintf("bundle requires engine %s or newer, running %s", e.Required, e.Engine)
}
