package journey

// Status is a lesson's state relative to the learner. It is derived on
// every read from the catalog and the journey state, never persisted.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusAvailable Status = "available"
	StatusLocked    Status = "locked"
)

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusCompleted:
		return "✅"
	case StatusCurrent:
		return "👉"
	case StatusAvailable:
		return "🔓"
	case StatusLocked:
		return "🔒"
	default:
		return "?"
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusCurrent:
		return "Up next"
	case StatusAvailable:
		return "Available"
	case StatusLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}
