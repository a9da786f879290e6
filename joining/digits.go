package joining

import "slices"

// ReverseDigitRuns reverses, in place, the order of characters within every
// maximal run of ASCII decimal digits of text, and returns text. All other
// codepoints stay where they are and delimit runs.
//
// This corrects embedded numbers for renderers which mirror the complete line.
// Every run is reversed, including runs within non-Arabic parts of the text.
func ReverseDigitRuns(text []rune) []rune {
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && isDigit(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			slices.Reverse(text[start:i])
			start = -1
		}
	}
	return text
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
