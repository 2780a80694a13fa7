// Command dnfnorm rewrites a JSON Schema document into disjunctive normal
// form.
//
// Usage:
//
//	dnfnorm [flags] [file]
//
// With no file argument, dnfnorm reads the schema from stdin. The
// normalized schema is written to stdout.
//
// Flags:
//
//	-check     verify the output against the normal-form grammar before printing
//	-verbose   log each stage of normalization
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/goccy/go-json"
	jsonschema "github.com/schemafences/dnf"
)

var (
	check   = flag.Bool("check", false, "verify the normalized output before printing")
	verbose = flag.Bool("verbose", false, "log each stage of normalization")
)

func main() {
	flag.Parse()

	input, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(input, &schema); err != nil {
		log.Fatalf("parse schema: %v", err)
	}

	if *verbose {
		log.Printf("normalizing schema")
	}

	normalized, err := jsonschema.Normalize(&schema)
	if err != nil {
		log.Fatalf("normalize: %v", err)
	}

	if *check {
		if *verbose {
			log.Printf("checking normal form")
		}
		if err := jsonschema.CheckNormalized(normalized); err != nil {
			log.Fatalf("check normalized: %v", err)
		}
	}

	out, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
