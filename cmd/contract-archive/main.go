package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joelkehle/contract-intel/internal/archive"
	"github.com/joelkehle/contract-intel/internal/contractextract"
)

func main() {
	dbPath := flag.String("db", "", "SQLite archive path")
	list := flag.Bool("list", false, "List archived analyses")
	typeFilter := flag.String("type", "", "Restrict -list to one contract type")
	get := flag.String("get", "", "Document reference to fetch")
	asJSON := flag.Bool("json", false, "Print the fetched envelope as JSON instead of markdown")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing required -db")
	}
	store, err := archive.Open(*dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer store.Close()

	switch {
	case *list:
		listAnalyses(store, *typeFilter)
	case *get != "":
		getAnalysis(store, *get, *asJSON)
	default:
		log.Fatal("nothing to do: pass -list or -get")
	}
}

func listAnalyses(store *archive.Store, typeFilter string) {
	sums, err := store.ListAnalyses(typeFilter)
	if err != nil {
		log.Fatalf("list: %v", err)
	}
	if len(sums) == 0 {
		fmt.Println("no archived analyses")
		return
	}
	for _, s := range sums {
		fmt.Printf("%s\t%s\t%.0f/100\t%s\n", s.DocRef, s.ContractType, s.OverallConfidence, s.AnalyzedAt.Format("2006-01-02 15:04"))
	}
}

func getAnalysis(store *archive.Store, docRef string, asJSON bool) {
	env, err := store.GetAnalysis(docRef)
	if err != nil {
		log.Fatalf("get %s: %v", docRef, err)
	}
	if asJSON {
		b, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			log.Fatalf("encode envelope: %v", err)
		}
		os.Stdout.Write(b)
		fmt.Println()
		return
	}
	// Archived envelopes may predate report layout changes; rebuild so the
	// markdown always reflects the current format.
	rebuilt, err := contractextract.RebuildResponseFromEnvelope(env)
	if err != nil {
		log.Fatalf("rebuild report: %v", err)
	}
	fmt.Print(rebuilt.ReportMarkdown)
}
