package draw

const (
	// SequenceLength is the number of slots in the display sequence.
	SequenceLength = 30

	// WinnerWindowStart and WinnerWindowEnd bound the slot (0-indexed,
	// inclusive) the winning item is forced into, so the reveal lands inside
	// the visible scrolling window.
	WinnerWindowStart = 10
	WinnerWindowEnd   = 19
)

// Log messages
const (
	LogMsgDrawDenied    = "Draw denied by cooldown"
	LogMsgDrawCompleted = "Draw completed"
	LogMsgDrawFailed    = "Failed to record draw"
)
