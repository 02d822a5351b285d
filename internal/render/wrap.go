package render

import "strings"

// wrap splits text into greedy word-wrapped lines of at most width
// columns. Each line takes as many whole words as fit; a single word
// longer than the width occupies its own overflow line. Blank or
// whitespace-only text yields exactly one empty line.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+len(" ")+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
