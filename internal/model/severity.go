package model

import (
	"time"

	"github.com/google/uuid"
)

// Severity is the cosmetic level of an alert banner
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	if s == "" {
		return string(SeverityDanger)
	}
	return string(s)
}

// Notice is a request to show an alert, expressed as a localization key so
// that pure code does not depend on the UI language.
type Notice struct {
	Key      string
	Severity Severity
}

// Alert is a banner currently shown to the user
type Alert struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// NewAlert creates an alert with a fresh ID. An empty severity becomes danger.
func NewAlert(message string, severity Severity) *Alert {
	if severity == "" {
		severity = SeverityDanger
	}
	return &Alert{
		ID:        "alert-" + uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
}
