package wordsearch

import "testing"

func TestFormatWordList(t *testing.T) {
	words := []string{"CAT", "DOG", "BIRD"}

	got := FormatWordList(words, 2, 4)
	want := "'CAT' , 'DOG' ,\n'BIRD',"
	if got != want {
		t.Errorf("FormatWordList = %q, want %q", got, want)
	}

	if got := FormatWordList(nil, 7, 5); got != "" {
		t.Errorf("FormatWordList(nil) = %q, want empty", got)
	}
}

func TestFormatWordColumns(t *testing.T) {
	words := []string{"CAT", "DOG", "BIRD"}

	got := FormatWordColumns(words, 2, 4)
	want := "CAT       DOG \nBIRD"
	if got != want {
		t.Errorf("FormatWordColumns = %q, want %q", got, want)
	}

	if got := FormatWordColumns(nil, 7, 5); got != "" {
		t.Errorf("FormatWordColumns(nil) = %q, want empty", got)
	}
}

func TestFormatWordListSingleRow(t *testing.T) {
	got := FormatWordList([]string{"SEA"}, 7, 3)
	want := "'SEA',"
	if got != want {
		t.Errorf("FormatWordList = %q, want %q", got, want)
	}
}
