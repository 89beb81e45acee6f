package wordlist

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"sea", "SEA", " Sea ", "base", "", "  ", "LINE"})
	want := []string{"BASE", "LINE", "SEA"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestDefault(t *testing.T) {
	words := Default()
	if len(words) == 0 {
		t.Fatal("built-in vocabulary is empty")
	}

	seen := make(map[string]bool, len(words))
	for _, word := range words {
		if seen[word] {
			t.Errorf("duplicate word %q in built-in vocabulary", word)
		}
		seen[word] = true
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				t.Fatalf("word %q contains non-letter %q", word, r)
			}
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment\nsea\n\nBASE\n  horizon  \nab\ntoolongword\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, 3, 8)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"SEA", "BASE", "HORIZON"}
	if !slices.Equal(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoadRejectsNonLetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("sea\nfoo-bar\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path, 1, 0); err == nil {
		t.Error("Load accepted a word with a non-letter character")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 1, 0); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}
