package diag

import "testing"

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Fatal, "fatal"},
		{Error, "error"},
		{Warn, "warn"},
		{Info, "info"},
		{Ignore, "ignore"},
		{Severity(255), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity(%d).String() = %q; want %q", tt.severity, got, tt.want)
			}
		})
	}
}

func TestSeverity_IsFailure(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{Fatal, true},
		{Error, true},
		{Warn, false},
		{Info, false},
		{Ignore, false},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			if got := tt.severity.IsFailure(); got != tt.want {
				t.Errorf("%s.IsFailure() = %v; want %v", tt.severity, got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		word   string
		want   Severity
		wantOK bool
	}{
		{"error", Error, true},
		{"warn", Warn, true},
		{"ignore", Ignore, true},
		{"ERROR", Error, true},
		{"Warn", Warn, true},
		{"IGNORE", Ignore, true},
		{"fatal", 0, false},
		{"info", 0, false},
		{"warning", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := ParseSeverity(tt.word)
			if ok != tt.wantOK {
				t.Fatalf("ParseSeverity(%q) ok = %v; want %v", tt.word, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v; want %v", tt.word, got, tt.want)
			}
		})
	}
}
