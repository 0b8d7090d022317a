package pipeline

import (
	"regexp"
	"strings"
)

var (
	reHorizWS  = regexp.MustCompile(`[ \t]+`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// NormalizePageText canonicalizes the raw text of one page: non-breaking
// spaces become ordinary spaces, carriage returns become newlines, runs of
// horizontal whitespace collapse to one space, and 3+ consecutive newlines
// collapse to two. Empty in, empty out.
func NormalizePageText(input string) string {
	s := strings.ReplaceAll(input, " ", " ")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reHorizWS.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func collapseSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}
