package validate

import "testing"

func TestExpectedPattern(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"standard", "JCS-41-4-694.xml", "JCS-41-4-694"},
		{"trailing suffix ignored", "JCS-41-4-694-final.xml", "JCS-41-4-694"},
		{"lowercase journal code", "jcs-1-2-3.xml", "jcs-1-2-3"},
		{"no extension", "JCS-41-4-694", "JCS-41-4-694"},
		{"no structured prefix", "manuscript.xml", "manuscript"},
		{"digits first", "41-JCS-4-694.xml", "41-JCS-4-694"},
		{"incomplete prefix", "JCS-41-4.xml", "JCS-41-4"},
		{"empty", "", ""},
		{"only extension", ".xml", ""},
		{"double extension strips last only", "JCS-41-4-694.xml.bak", "JCS-41-4-694"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectedPattern(tt.filename); got != tt.want {
				t.Errorf("ExpectedPattern(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
