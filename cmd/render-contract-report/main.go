package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joelkehle/contract-intel/internal/contractextract"
	"github.com/joelkehle/contract-intel/internal/reportpdf"
)

func main() {
	inputPath := flag.String("input", "", "Path to saved contract-analysis response envelope JSON")
	outputPath := flag.String("output", "", "Path to write rebuilt markdown (defaults to stdout)")
	jsonOutputPath := flag.String("json-output", "", "Optional path to write rebuilt response envelope JSON")
	pdfOutputPath := flag.String("pdf-output", "", "Optional path to write a PDF rendering (requires Chromium)")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	in, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var env contractextract.ResponseEnvelope
	if err := json.Unmarshal(in, &env); err != nil {
		log.Fatalf("decode input JSON: %v", err)
	}

	rebuilt, err := contractextract.RebuildResponseFromEnvelope(env)
	if err != nil {
		log.Fatalf("rebuild report: %v", err)
	}

	if err := writeMarkdown(*outputPath, rebuilt.ReportMarkdown); err != nil {
		log.Fatalf("write markdown: %v", err)
	}
	if *jsonOutputPath != "" {
		if err := writeEnvelopeJSON(*jsonOutputPath, rebuilt); err != nil {
			log.Fatalf("write json output: %v", err)
		}
	}
	if *pdfOutputPath != "" {
		payload, err := json.Marshal(rebuilt)
		if err != nil {
			log.Fatalf("encode envelope for pdf: %v", err)
		}
		pdf, err := reportpdf.NewChromiumRenderer().Render(context.Background(), string(payload))
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*pdfOutputPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
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
