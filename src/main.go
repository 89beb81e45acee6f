package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"google.golang.org/api/iterator"

	wordsearch "crosswarped.com/wordsearch"
)

type GeneratePuzzleRequest struct {
	BoardSize     int      `json:"boardSize"`
	WordScope     string   `json:"wordScope"`
	Words         []string `json:"words"`
	ExcludedWords []string `json:"excludedWords"`
	Seed          uint64   `json:"seed"`
}

type GeneratePuzzleResponse struct {
	Success       bool     `json:"success"`
	Board         string   `json:"board"`
	Words         []string `json:"words"`
	MaxWordLength int      `json:"maxWordLength"`
	Error         string   `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "wordsearch-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word FROM `wordsearch-x.FirestoreQuery.all_words` WHERE scope = %q", scope)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req GeneratePuzzleRequest) (*wordsearch.Puzzle, error) {
	if req.BoardSize < 2 {
		return nil, fmt.Errorf("boardSize must be at least 2")
	}
	if req.BoardSize > 64 {
		return nil, fmt.Errorf("boardSize must be at most 64")
	}

	for i, word := range req.Words {
		req.Words[i] = strings.ToUpper(word)
	}

	if req.WordScope != "" {
		scopeWords, err := getWords(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		fmt.Printf("Loaded %d words for scope %q\n", len(scopeWords), req.WordScope)

		req.Words = append(req.Words, scopeWords...)
	}

	excluded := make(map[string]bool, len(req.ExcludedWords))
	for _, word := range req.ExcludedWords {
		excluded[strings.ToUpper(word)] = true
	}
	vocabulary := req.Words[:0]
	for _, word := range req.Words {
		if !excluded[word] {
			vocabulary = append(vocabulary, word)
		}
	}

	if len(vocabulary) == 0 {
		return nil, fmt.Errorf("words must not be empty")
	}

	randSource := rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond()))
	if req.Seed != 0 {
		randSource = rand.NewPCG(req.Seed, req.Seed)
	}

	generator := wordsearch.CreateGenerator(req.BoardSize, vocabulary, rand.New(randSource))
	return generator.Generate()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func generatePuzzle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req GeneratePuzzleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := GeneratePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	puzzle, err := execute(r.Context(), req)

	response := GeneratePuzzleResponse{
		Success: err == nil,
	}
	if puzzle != nil {
		response.Board = puzzle.Grid.Repr()
		response.Words = puzzle.Words
		response.MaxWordLength = puzzle.MaxWordLength
	}
	if err != nil {
		response.Error = err.Error()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/generate-puzzle", generatePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
