// Package wordlist prepares puzzle vocabularies: the built-in word
// list, file loading, and normalization.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Default returns the built-in vocabulary, one word per line in
// words.txt.
func Default() []string {
	var words []string
	for _, line := range strings.Split(defaultWords, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// Normalize uppercases and deduplicates a vocabulary. The result is
// sorted, so any later shuffle is the only source of ordering
// randomness.
func Normalize(words []string) []string {
	seen := make(map[string]bool, len(words))
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToUpper(strings.TrimSpace(word))
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		normalized = append(normalized, word)
	}
	slices.Sort(normalized)
	return normalized
}

// Load reads one word per line from path, skipping blank lines and
// '#' comments. Words are uppercased; words outside
// [minLength, maxLength] are dropped (maxLength 0 means no upper
// bound). A word with a non-letter character is an error.
func Load(path string, minLength, maxLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) < minLength || (maxLength > 0 && len(word) > maxLength) {
			continue
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("word %s contains non-letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
