package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joelkehle/contract-intel/internal/archive"
	"github.com/joelkehle/contract-intel/internal/contractextract"
)

// fileSource serves document text straight from the filesystem; the document
// reference is the file path.
type fileSource struct{}

func (fileSource) FetchText(_ context.Context, docRef string) (string, error) {
	b, err := os.ReadFile(docRef)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// logSink reports pipeline checkpoints to the process log.
type logSink struct{}

func (logSink) ReportProgress(docRef string, status contractextract.Status, progress int, errMessage string) error {
	if errMessage != "" {
		log.Printf("progress doc=%s status=%s progress=%d error=%q", docRef, status, progress, errMessage)
		return nil
	}
	log.Printf("progress doc=%s status=%s progress=%d", docRef, status, progress)
	return nil
}

func main() {
	inputPath := flag.String("input", "", "Path to the contract text file to analyze")
	jsonOutputPath := flag.String("json-output", "", "Optional path to write the response envelope JSON")
	reportPath := flag.String("report-output", "", "Path to write the markdown report (defaults to stdout)")
	dbPath := flag.String("db", "", "Optional SQLite archive path; the analysis is saved when set")
	useNER := flag.Bool("ner", false, "Enable LLM entity recognition (requires ANTHROPIC_API_KEY)")
	quiet := flag.Bool("quiet", false, "Suppress progress logging")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := []contractextract.Option{}
	if !*quiet {
		opts = append(opts, contractextract.WithProgressSink(logSink{}))
	}
	if *useNER {
		rec, err := contractextract.NewAnthropicRecognizerFromEnv()
		if err != nil {
			log.Fatalf("entity recognizer: %v", err)
		}
		opts = append(opts, contractextract.WithEntityRecognizer(rec))
	}

	pipeline := contractextract.NewPipeline(fileSource{}, opts...)
	result, err := pipeline.Run(ctx, *inputPath)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}
	env := contractextract.BuildResponse(result)

	if err := writeMarkdown(*reportPath, env.ReportMarkdown); err != nil {
		log.Fatalf("write report: %v", err)
	}
	if *jsonOutputPath != "" {
		if err := writeEnvelopeJSON(*jsonOutputPath, env); err != nil {
			log.Fatalf("write json output: %v", err)
		}
	}
	if *dbPath != "" {
		store, err := archive.Open(*dbPath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer store.Close()
		if err := store.SaveAnalysis(env); err != nil {
			log.Fatalf("archive analysis: %v", err)
		}
		log.Printf("archived doc=%s type=%s score=%.0f", env.DocRef, env.ContractType, env.Data.OverallConfidenceScore)
	}
}

func writeMarkdown(outputPath, markdown string) error {
	if outputPath == "" {
		_, err := fmt.Print(markdown)
		return err
	}
	return os.WriteFile(outputPath, []byte(markdown), 0o644)
}

func writeEnvelopeJSON(path string, env contractextract.ResponseEnvelope) error {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
