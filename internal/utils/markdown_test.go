package utils

import "testing"

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Bitcoin climbs past a key level",
			want:  "Bitcoin climbs past a key level",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "emphasis stripped",
			input: "**Bitcoin** rallies as *traders* return",
			want:  "Bitcoin rallies as traders return",
		},
		{
			name:  "link keeps label drops url",
			input: "Read the [full report](https://example.com/report) today",
			want:  "Read the full report today",
		},
		{
			name:  "heading and list flattened",
			input: "# Market update\n\n- bitcoin up\n- ethereum flat",
			want:  "Market update bitcoin up ethereum flat",
		},
		{
			name:  "inline code kept",
			input: "The `halving` event is near",
			want:  "The halving event is near",
		},
		{
			name:  "whitespace collapsed",
			input: "Bitcoin   climbs\n\npast resistance",
			want:  "Bitcoin climbs past resistance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdown(tt.input); got != tt.want {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
