package wordsearch

import (
	"fmt"
	"strings"
)

// FormatWordList renders the answer list as the literal text block
// written to the words file: wordsPerRow single-quoted words per row,
// each left-justified to pad+2 characters, comma separated, with a
// trailing comma.
func FormatWordList(words []string, wordsPerRow, pad int) string {
	if len(words) == 0 {
		return ""
	}
	rows := make([]string, 0, (len(words)+wordsPerRow-1)/wordsPerRow)
	for _, chunk := range chunkWords(words, wordsPerRow) {
		quoted := make([]string, len(chunk))
		for i, word := range chunk {
			quoted[i] = fmt.Sprintf("%-*s", pad+2, "'"+word+"'")
		}
		rows = append(rows, strings.Join(quoted, ", "))
	}
	return strings.Join(rows, ",\n") + ","
}

// FormatWordColumns renders the answer list for console display:
// wordsPerRow words per row, left-justified to pad characters.
func FormatWordColumns(words []string, wordsPerRow, pad int) string {
	if len(words) == 0 {
		return ""
	}
	rows := make([]string, 0, (len(words)+wordsPerRow-1)/wordsPerRow)
	for _, chunk := range chunkWords(words, wordsPerRow) {
		padded := make([]string, len(chunk))
		for i, word := range chunk {
			padded[i] = fmt.Sprintf("%-*s", pad, word)
		}
		rows = append(rows, strings.Join(padded, "      "))
	}
	return strings.Join(rows, "\n")
}

func chunkWords(words []string, perRow int) [][]string {
	if perRow < 1 {
		perRow = 1
	}
	var chunks [][]string
	for start := 0; start < len(words); start += perRow {
		end := min(start+perRow, len(words))
		chunks = append(chunks, words[start:end])
	}
	return chunks
}
