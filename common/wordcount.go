package common

import "strings"

// WordCount counts whitespace-separated words in s.
// Used for the minimum-length gate at review submission and for the
// derived word_count column on posts.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
