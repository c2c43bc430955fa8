package rag

import (
	"strconv"
	"strings"
)

// MaxPassageRunes caps how much of one passage enters the prompt.
const MaxPassageRunes = 1200

// BuildContextBlock renders retrieved passages into the numbered
// reference block the answer prompt embeds. Numbering is 1-based and
// follows retrieval rank.
func BuildContextBlock(passages []Passage) string {
	var b strings.Builder
	for i, p := range passages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("[" + strconv.Itoa(i+1) + "] ")
		b.WriteString(truncateRunes(p.Text, MaxPassageRunes))
	}
	return b.String()
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
