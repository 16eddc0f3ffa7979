package loader

import (
	"fmt"
	"strings"
)

// SceneFileUnreadable reports that the scene path could not be opened.
type SceneFileUnreadable struct {
	Path string
	Err  error
}

func (e *SceneFileUnreadable) Error() string {
	return fmt.Sprintf("scene file unreadable: %s: %v", e.Path, e.Err)
}

func (e *SceneFileUnreadable) Unwrap() error { return e.Err }

// SyntaxError reports a line the tokenizer/parser rejected outright.
type SyntaxError struct {
	File    string
	Line    int
	Message string
	Stack   []string // surrounding context lines, outermost first
}

func (e *SyntaxError) Error() string {
	return formatParseError(e.File, e.Line, e.Message, e.Stack)
}

// ParserFatal reports a semantic validation failure on lines that parsed
// cleanly (e.g. a scene that declares no geometry and no lights, or a
// checker cell naming a material that is itself a checker).
type ParserFatal struct {
	File    string
	Line    int
	Message string
	Stack   []string
}

func (e *ParserFatal) Error() string {
	return formatParseError(e.File, e.Line, e.Message, e.Stack)
}

// TextureMappingError reports that a directive referenced a material
// name that has not been declared; materials and checkers are the only
// named surface resources the reader resolves. The reader never decodes
// texture data itself, so this is always a resolution failure, not a
// decode failure.
type TextureMappingError struct {
	File    string
	Line    int
	Name    string
	Message string
}

func (e *TextureMappingError) Error() string {
	return formatParseError(e.File, e.Line, fmt.Sprintf("texture %q: %s", e.Name, e.Message), nil)
}

// formatParseError renders a file/line-annotated message followed by
// any accumulated error-stack context, trimmed of leading/trailing
// blank lines.
func formatParseError(file string, line int, msg string, stack []string) string {
	var head string
	if file != "" {
		head = fmt.Sprintf("[%s: %d] error: %s", file, line, msg)
	} else {
		head = fmt.Sprintf("error: %s", msg)
	}
	full := strings.Trim(strings.Join(append([]string{head}, stack...), "\n"), "\n")
	return full
}
