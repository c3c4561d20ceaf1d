package series

import "fmt"

// MissingValueError reports a builder invoked without its required value
// array.
type MissingValueError struct {
	Builder string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("value is required to build %s", e.Builder)
}

// LengthMismatchError reports an explicit index whose length disagrees with
// the value array's length.
type LengthMismatchError struct {
	IndexLen int
	ValueLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("index length (%d) must match value length (%d)", e.IndexLen, e.ValueLen)
}

// ScalarRequiredError reports a builder field that must be a single-value
// quantity but holds more than one value.
type ScalarRequiredError struct {
	Field string
}

func (e *ScalarRequiredError) Error() string {
	return fmt.Sprintf("%s must be a single-value quantity", e.Field)
}
