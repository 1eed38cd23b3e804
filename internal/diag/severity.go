package diag

// Severity orders a diagnostic's importance. Ordering matters: Bag.Sort
// relies on higher severities sorting first within the same span.
type Severity uint8

const (
	SevHint Severity = iota
	SevInfo
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevHint:
		return "HINT"
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
