package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"crosswarped.com/wordsearch"
	"crosswarped.com/wordsearch/internal/wordlist"
)

const (
	boardDisplayThreshold = 20
	wordsDisplayThreshold = 300
)

func main() {

	boardSize := flag.Int("size", 20, "The side length of the board")
	file := flag.String("file", "", "The file to load words from (built-in list if empty)")
	minWordLength := flag.Int("min_length", 1, "The minimum word length")
	maxWordLength := flag.Int("max_length", 0, "The maximum word length (0 = no limit)")
	seed := flag.Uint64("seed", 0, "The random seed (0 = seeded from time)")

	boardOut := flag.String("board-out", "./out/word-search-board.txt", "The file to write the board to")
	wordsOut := flag.String("words-out", "./out/word-search-words.txt", "The file to write the word list to")
	wordsPerRow := flag.Int("words-per-row", 7, "Words per row in the word list output")

	profile := flag.Bool("profile", false, "Profile the generator")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	randSource := rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond()))
	if *seed != 0 {
		randSource = rand.NewPCG(*seed, *seed)
	}

	var vocabulary []string
	if *file != "" {
		fmt.Println("Loading words from file...")
		var err error
		if vocabulary, err = wordlist.Load(*file, *minWordLength, *maxWordLength); err != nil {
			fmt.Println("Error loading words from file:", err)
			os.Exit(1)
		}
	} else {
		vocabulary = wordlist.Default()
	}

	fmt.Println("Vocabulary words:", len(vocabulary))

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	generator := wordsearch.CreateGenerator(*boardSize, vocabulary, rand.New(randSource))

	puzzle, err := generator.Generate()
	if err != nil {
		fmt.Println("Error generating puzzle:", err)
		os.Exit(1)
	}

	board := puzzle.Grid.Repr()
	wordList := wordsearch.FormatWordList(puzzle.Words, *wordsPerRow, puzzle.MaxWordLength)

	if err := saveTextFile(*boardOut, board); err != nil {
		fmt.Println("Error writing board file:", err)
		os.Exit(1)
	}
	if err := saveTextFile(*wordsOut, wordList); err != nil {
		fmt.Println("Error writing words file:", err)
		os.Exit(1)
	}

	fmt.Printf("Board %dx%d:\n", *boardSize, *boardSize)
	if *boardSize <= boardDisplayThreshold {
		fmt.Println(board)
		fmt.Println()
	}
	fmt.Printf("Words (count = %d):\n", len(puzzle.Words))
	if len(puzzle.Words) <= wordsDisplayThreshold {
		fmt.Println(wordsearch.FormatWordColumns(puzzle.Words, *wordsPerRow, puzzle.MaxWordLength))
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func saveTextFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
