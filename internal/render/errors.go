package render

import "fmt"

// Error codes for fatal rendering failures. None of these are recoverable;
// there is no partial or degraded rendering mode.
const (
	// CodePaletteExhausted: more distinct players on the board than colors
	// in the palette.
	CodePaletteExhausted = "PALETTE_EXHAUSTED"

	// CodeMissingTopology: a hex references a corner or edge that is not in
	// the board's maps. Indicates a malformed board built by the caller.
	CodeMissingTopology = "MISSING_TOPOLOGY"

	// CodeMalformedHarbor: a harbor's edge does not resolve to exactly one
	// off-board water slot.
	CodeMalformedHarbor = "MALFORMED_HARBOR"

	// CodeCanvasOverflow: a glyph block lands outside the fixed canvas.
	CodeCanvasOverflow = "CANVAS_OVERFLOW"
)

// RenderError describes a fatal rendering failure.
type RenderError struct {
	Code    string
	Message string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: [%s] %s", e.Code, e.Message)
}

func renderErrorf(code, format string, args ...any) *RenderError {
	return &RenderError{Code: code, Message: fmt.Sprintf(format, args...)}
}
