package board

// Tool selects how a finished gesture is committed.
type Tool int

const (
	// ToolBrush commits the gesture as a drawn stroke.
	ToolBrush Tool = iota
	// ToolEraser removes every committed stroke the gesture passes near.
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

// Mode selects which strokes a projection includes.
type Mode int

const (
	// ModeDynamic includes the in-progress ghost stroke for live preview.
	ModeDynamic Mode = iota
	// ModeFinalized includes committed strokes only.
	ModeFinalized
)

func (m Mode) String() string {
	switch m {
	case ModeDynamic:
		return "dynamic"
	case ModeFinalized:
		return "finalized"
	}
	return "unknown"
}
