package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"skumerge/internal/catalogue"
	"skumerge/internal/config"
	"skumerge/internal/consolidate"
	"skumerge/internal/excelimport"
	"skumerge/internal/export"
	"skumerge/internal/locator"
	"skumerge/internal/snapshot"
	"skumerge/internal/sources"
	"skumerge/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	pool := storage.NewPool()
	defer pool.Close()

	cmd := os.Args[1]
	switch cmd {
	case "consolidate":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sku := fs.String("sku", "", "product sku")
		dbPath := fs.String("db", "", "product database path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*sku) == "" {
			must(fmt.Errorf("--sku is required"))
		}

		record, err := newConsolidator(cfg, pool, *dbPath).Consolidate(*sku)
		must(err)
		printJSON(record)
		fmt.Printf("consolidated sku=%s sources=%d confidence=%.2f completeness=%.2f recommendation=%s\n",
			record.SKU, len(record.SourcesChecked), record.ConfidenceScore, record.CompletenessScore, record.Recommendation)

	case "consolidate:batch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		skus := fs.String("skus", "", "comma-separated skus")
		file := fs.String("file", "", "file with one sku per line")
		out := fs.String("out", "", "optional review xlsx path")
		dbPath := fs.String("db", "", "product database path")
		_ = fs.Parse(os.Args[2:])

		list, err := collectSKUs(*skus, *file, cfg.BatchLimit)
		must(err)

		summary := newConsolidator(cfg, pool, *dbPath).ConsolidateBatch(list)
		if strings.TrimSpace(*out) != "" {
			must(export.ReviewToXLSX(summary, *out))
			fmt.Printf("review exported to %s\n", *out)
		}
		fmt.Printf("batch done total=%d successful=%d failed=%d high_confidence=%d needs_review=%d\n",
			summary.TotalProcessed, summary.Successful, summary.Failed, summary.HighConfidence, summary.NeedsReview)

	case "excel:import":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "xlsx price list path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		summary, err := excelimport.Import(*input, cfg.TempDir())
		must(err)
		fmt.Printf("excel import done file=%s rows=%d products=%d snapshot=%s\n",
			summary.SourceFile, summary.RowsScanned, summary.Products, summary.OutputPath)

	case "catalogue:extract":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "catalogue file path")
		inType := fs.String("type", "pdf", "pdf|html")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		summary, err := catalogue.Extract(*input, *inType, cfg.TempDir())
		must(err)
		fmt.Printf("catalogue extract done file=%s type=%s products=%d snapshot=%s\n",
			summary.SourceFile, summary.InputType, summary.Products, summary.OutputPath)

	case "db:inspect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sku := fs.String("sku", "", "product sku")
		dbPath := fs.String("db", "", "product database path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*sku) == "" {
			must(fmt.Errorf("--sku is required"))
		}

		resolved, err := cfg.ResolveDBPath(*dbPath)
		must(err)
		conn, err := pool.Get(resolved)
		must(err)

		result := locator.FindProduct(conn, *sku)
		printJSON(result)
		if !result.Found {
			fmt.Printf("sku %s not found in %s\n", *sku, resolved)
		}

	case "show:latest":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sku := fs.String("sku", "", "product sku")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*sku) == "" {
			must(fmt.Errorf("--sku is required"))
		}

		record, err := snapshot.NewStore(cfg.ConsolidatedDir()).LoadLatest(*sku)
		must(err)
		if record == nil {
			must(fmt.Errorf("no consolidated snapshot for sku=%s", *sku))
		}
		printJSON(record)

	default:
		usage()
		os.Exit(1)
	}
}

// newConsolidator wires the source adapters over the resolved database.
// A missing database only disables the database source; the file-backed
// sources still run.
func newConsolidator(cfg config.Config, pool *storage.Pool, dbPath string) *consolidate.Consolidator {
	set := sources.NewSet(openDB(cfg, pool, dbPath), cfg.TempDir())
	return consolidate.New(set, snapshot.NewStore(cfg.ConsolidatedDir()))
}

func openDB(cfg config.Config, pool *storage.Pool, dbPath string) *sql.DB {
	resolved, err := cfg.ResolveDBPath(dbPath)
	if err != nil {
		fmt.Printf("database source disabled: %v\n", err)
		return nil
	}
	conn, err := pool.Get(resolved)
	if err != nil {
		fmt.Printf("database source disabled: %v\n", err)
		return nil
	}
	return conn
}

func collectSKUs(commaSeparated, file string, limit int) ([]string, error) {
	var out []string
	for _, sku := range strings.Split(commaSeparated, ",") {
		if s := strings.TrimSpace(sku); s != "" {
			out = append(out, s)
		}
	}
	if strings.TrimSpace(file) != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(string(raw), "\n") {
			if s := strings.TrimSpace(line); s != "" {
				out = append(out, s)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no skus given: use --skus or --file")
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func printJSON(v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	fmt.Println(string(raw))
}

func usage() {
	fmt.Println("usage: skumerge <command>")
	fmt.Println("commands:")
	fmt.Println("  consolidate --sku=AARC [--db=path]")
	fmt.Println("  consolidate:batch --skus=A,B | --file=skus.txt [--out=review.xlsx] [--db=path]")
	fmt.Println("  excel:import --input=pricelist.xlsx")
	fmt.Println("  catalogue:extract --input=catalogue.pdf --type=pdf|html")
	fmt.Println("  db:inspect --sku=AARC [--db=path]")
	fmt.Println("  show:latest --sku=AARC")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
