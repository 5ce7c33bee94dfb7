package skin

import "fmt"

// AssetNotFoundError reports a part referencing an asset key that the
// skin's asset table does not define.
type AssetNotFoundError struct {
	Key string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("skin asset not found: %s", e.Key)
}

// MissingSectionError reports a part missing the draw section its type
// requires.
type MissingSectionError struct {
	PartID  string
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("skin part %q missing required %q section", e.PartID, e.Section)
}

// UnknownPartError reports an unrecognized part type tag.
type UnknownPartError struct {
	Type string
}

func (e *UnknownPartError) Error() string {
	return fmt.Sprintf("unknown skin part type: %s", e.Type)
}
