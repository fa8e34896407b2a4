package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/reallyasi9/find-the-word/internal/words"
)

var configFile = flag.String("config", "", "YAML configuration `file` (optional)")
var outFile = flag.String("out", "", "output `file` for candidate words (overrides the configured path)")
var skipMatch = flag.Bool("skip-match", false, "write the candidate file but do not run the matcher")

var startTime = time.Now()

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <word>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one word required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := words.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = words.ReadConfig(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *outFile != "" {
		cfg.OutputFile = *outFile
	}

	if err := run(flag.Arg(0), cfg, *skipMatch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the single recovery point for the whole pipeline: every failure
// funnels back here as an error, and the output file is closed on every path
// before the process exits.
func run(word string, cfg words.Config, skipMatch bool) error {
	n := len(word)
	log.Printf("searching %v orderings of %q (%v candidates)", words.NumberOfOrderings(n), word, words.NumberOfEmissions(n))

	set := words.Collect(words.NewGenerator(word))
	log.Printf("collected %d distinct candidates in %v", set.Len(), time.Since(startTime))

	if err := writeArtifact(cfg.OutputFile, set); err != nil {
		return err
	}
	log.Printf("wrote %s", cfg.OutputFile)

	if skipMatch {
		return nil
	}

	matcher := words.NewMatcher(cfg.Matcher)
	if err := matcher.Match(context.Background(), cfg.OutputFile); err != nil {
		return err
	}
	return nil
}

func writeArtifact(filename string, set *words.WordSet) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	if _, err := set.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", filename, err)
	}
	return nil
}
