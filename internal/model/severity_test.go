package model

import (
	"strings"
	"testing"
)

func TestNewAlert_DefaultsToDanger(t *testing.T) {
	alert := NewAlert("Invalid Base64 input!", "")

	if alert.Severity != SeverityDanger {
		t.Errorf("Expected default severity danger, got %s", alert.Severity)
	}
	if !strings.HasPrefix(alert.ID, "alert-") {
		t.Errorf("Expected ID to start with 'alert-', got: %s", alert.ID)
	}
	if len(alert.ID) != len("alert-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("alert-")+36, len(alert.ID), alert.ID)
	}
	if alert.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestNewAlert_UniqueIDs(t *testing.T) {
	a := NewAlert("one", SeverityInfo)
	b := NewAlert("two", SeverityInfo)

	if a.ID == b.ID {
		t.Error("Expected different alert IDs")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{"", "danger"},
		{SeverityDanger, "danger"},
		{SeverityWarning, "warning"},
		{SeveritySuccess, "success"},
		{SeverityInfo, "info"},
	}

	for _, test := range tests {
		if result := test.severity.String(); result != test.expected {
			t.Errorf("Severity(%q).String() = %s, expected %s", string(test.severity), result, test.expected)
		}
	}
}
