package tools

import "errors"

var (
	// ErrUnknownProperty indicates a property name outside the supported set.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrUnknownPreset indicates a preset name or description that resolved
	// to nothing.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnknownTool indicates a tool name with no registered handler.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrUnresolvedValue indicates a value the parsers could not interpret
	// for the requested property.
	ErrUnresolvedValue = errors.New("could not interpret value")

	// ErrEmptyChangeSet indicates an instruction that produced no changes.
	ErrEmptyChangeSet = errors.New("no style changes found")

	// ErrInvalidToolInput indicates tool input that failed to decode.
	ErrInvalidToolInput = errors.New("invalid tool input")
)
