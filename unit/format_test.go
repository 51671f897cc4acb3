package unit

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormatterLength(t *testing.T) {
	tests := []struct {
		name   string
		tag    language.Tag
		length Length
		want   string
	}{
		{"mm english", language.English, MM(10), "10 mm"},
		{"inches english", language.English, Inches(0.5), "0.5 in"},
		{"fraction has no unit", language.English, Frac(0.25), "0.25"},
		{"german decimal comma", language.German, MM(12.7), "12,7 mm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFormatter(tt.tag).Length(tt.length)
			if got != tt.want {
				t.Errorf("Length(%v) = %q, want %q", tt.length, got, tt.want)
			}
		})
	}
}
