package pipeline

import "testing"

func TestNormalizePageText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \t \n ", want: ""},
		{name: "nbsp becomes space", input: "a b", want: "a b"},
		{name: "tabs collapse", input: "a\t\t  b", want: "a b"},
		{name: "carriage returns", input: "a\rb", want: "a\nb"},
		{name: "newline runs collapse to two", input: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "trimmed", input: "  x  ", want: "x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePageText(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
