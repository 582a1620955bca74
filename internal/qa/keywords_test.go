package qa

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			"Stop words and short tokens removed",
			"What is the Python course schedule?",
			[]string{"python", "course", "schedule?"},
		},
		{
			"Lowercased",
			"PYTHON Course",
			[]string{"python", "course"},
		},
		{
			"Order preserved",
			"javascript before python",
			[]string{"javascript", "before", "python"},
		},
		{
			"Duplicates preserved",
			"python or python",
			[]string{"python", "python"},
		},
		{
			"All tokens filtered",
			"Tell me about AI",
			nil,
		},
		{
			"Length counts characters not bytes",
			"日本 日本語",
			[]string{"日本語"},
		},
		{
			"Empty query",
			"",
			nil,
		},
		{
			"Whitespace only",
			"   \t  ",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
