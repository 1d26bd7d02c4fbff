// Command validate checks event source documents without building the site.
// It runs the same strict decoding as the publisher and reports, per file,
// whether the schema holds, how many events are still upcoming, and which
// category-language combinations have no upcoming events.
//
// Usage:
//
//	go run ./cmd/validate data/rust.yaml data/python.yaml data/perl.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/virtual-events/internal/adapter/site"
	"github.com/couchcryptid/virtual-events/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s SOURCE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(flag.Args(), clockwork.NewRealClock()))
}

func run(paths []string, clock clockwork.Clock) int {
	now := clock.Now()
	loader := site.NewDir("", slog.Default())

	fmt.Println("=== Event Source Validation ===")
	fmt.Println()

	schema := &phase{name: "Schema"}
	var events []domain.Event
	for _, path := range paths {
		src, err := loader.Load(context.Background(), path)
		if err != nil {
			schema.errorf("%v", err)
			continue
		}
		decoded, err := domain.DecodeSource(src)
		if err != nil {
			schema.errorf("%v", err)
			continue
		}
		events = append(events, decoded...)
	}

	upcoming := domain.Upcoming(events, now)
	coverage := checkCoverage(domain.Partitions(upcoming))

	phases := []*phase{schema, coverage}

	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Events: %d total, %d upcoming, %d past\n", len(events), len(upcoming), len(events)-len(upcoming))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	// Empty combinations are still published, so coverage gaps are reported
	// but do not fail validation.
	if schema.passed() {
		fmt.Println("\nAll sources are valid.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func checkCoverage(parts []domain.Partition) *phase {
	p := &phase{name: "Coverage (informational)"}
	for _, part := range parts {
		if len(part.Events) == 0 {
			p.errorf("%s has no upcoming events", part.Label)
		}
	}
	return p
}
