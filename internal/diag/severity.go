package diag

// Severity defines the class a diagnostic message is logged under.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Plural returns the header name used when a whole class is listed.
func (s Severity) Plural() string {
	switch s {
	case SevInfo:
		return "INFOS"
	case SevWarning:
		return "WARNINGS"
	case SevError:
		return "ERRORS"
	}
	return "UNKNOWN"
}

// Prefix returns the line prefix written in front of a single message.
func (s Severity) Prefix() string {
	return s.String() + ": "
}
