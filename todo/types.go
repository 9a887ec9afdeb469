package todo

// Priority represents the importance of a todo.
type Priority string

const (
	// PriorityHigh sorts first.
	PriorityHigh Priority = "high"

	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"

	// PriorityLow sorts last.
	PriorityLow Priority = "low"
)

// ValidPriorities returns all valid priority values in display order.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Lower ranks display first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}
