// rcpinspect prints a pre-conversion report for RaceCapture Pro session
// logs: which columns resolve, how much data there is, and how much a GPS
// cleanup would touch. Read-only; it never writes files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/autosportlabs/RCP2GEMS/internal/clean"
	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

func main() {
	minSats := flag.Int("min-sats", 4, "Satellite threshold used for the fix-quality summary")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		log.Fatalf("usage: %s [flags] <session.csv> [more.csv ...]", os.Args[0])
	}

	for i, path := range args {
		if i > 0 {
			fmt.Println()
		}
		table, err := rcplog.Parse(path)
		if err != nil {
			log.Fatalf("parse %s: %v", path, err)
		}
		printSessionReport(path, table, *minSats)
	}
}

func printSessionReport(path string, table *rcplog.Table, minSats int) {
	fmt.Printf("Session: %s\n", path)
	fmt.Printf("  rows: %d\n", len(table.Rows))
	fmt.Printf("  channels: %d\n", table.Width())

	schema := clean.ResolveSchema(table.Header)
	fmt.Printf("  resolved columns: time=%s latitude=%s longitude=%s satellites=%s\n",
		columnName(table.Header, schema.Time),
		columnName(table.Header, schema.Lat),
		columnName(table.Header, schema.Lon),
		columnName(table.Header, schema.Sats))

	if schema.Time >= 0 {
		first, last, ok := timeBounds(table, schema.Time)
		if ok {
			fmt.Printf("  wall-clock span: %s → %s\n", first, last)
		} else {
			fmt.Printf("  wall-clock span: no numeric timestamps\n")
		}
	}

	if schema.Sats >= 0 {
		printSatSummary(table, schema.Sats, minSats)
	}
}

func columnName(header []string, idx int) string {
	if idx < 0 {
		return "(none)"
	}
	return header[idx]
}

// timeBounds returns the first and last numeric timestamp cells as written
// in the log.
func timeBounds(table *rcplog.Table, col int) (string, string, bool) {
	first, last := "", ""
	for _, row := range table.Rows {
		if _, ok := clean.ParseNumeric(row.Cells[col]); !ok {
			continue
		}
		if first == "" {
			first = row.Cells[col]
		}
		last = row.Cells[col]
	}
	return first, last, first != ""
}

func printSatSummary(table *rcplog.Table, col int, minSats int) {
	counts := make(map[int]int)
	unknown := 0
	below := 0
	for _, row := range table.Rows {
		v, ok := clean.ParseNumeric(row.Cells[col])
		if !ok {
			unknown++
			continue
		}
		counts[int(v)]++
		if v < float64(minSats) {
			below++
		}
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	fmt.Printf("  satellite counts:\n")
	for _, k := range keys {
		fmt.Printf("    %2d sats: %d rows\n", k, counts[k])
	}
	if unknown > 0 {
		fmt.Printf("    unknown: %d rows\n", unknown)
	}
	fmt.Printf("  rows below %d-satellite threshold: %d of %d\n", minSats, below, len(table.Rows))
}
