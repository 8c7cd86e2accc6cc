package model

// Severity classifies a validation issue.
type Severity int

const (
	// SeverityWarning marks an advisory issue that never blocks generation.
	SeverityWarning Severity = iota
	// SeverityError marks an issue that fails validation.
	SeverityError
)

// String returns the severity label.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MarshalJSON encodes the severity as its label.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Issue is a single validation finding against a configuration.
type Issue struct {
	// Severity is the issue severity.
	Severity Severity `json:"severity"`
	// Field names the configuration field the issue concerns, if any.
	Field string `json:"field,omitempty"`
	// Message is the human-readable description.
	Message string `json:"message"`
}

// Warning constructs a warning-severity issue.
func Warning(field, message string) Issue {
	return Issue{Severity: SeverityWarning, Field: field, Message: message}
}

// ErrorIssue constructs an error-severity issue.
func ErrorIssue(field, message string) Issue {
	return Issue{Severity: SeverityError, Field: field, Message: message}
}

// HasErrors reports whether any issue carries error severity.
// A configuration is valid iff this returns false.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Messages returns the messages of all issues matching the severity.
func Messages(issues []Issue, severity Severity) []string {
	var msgs []string
	for _, issue := range issues {
		if issue.Severity == severity {
			msgs = append(msgs, issue.Message)
		}
	}
	return msgs
}
