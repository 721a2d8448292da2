package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	. "github.com/viktordanov/hexsketch"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	output     = flag.String("o", "sample.svg", "output file, .svgz is gzip compressed")
	configPath = flag.String("config", "", "YAML style and canvas config")
	workers    = flag.Int("workers", 1, "number of decode workers")
	randomLen  = flag.Int("random", 0, "draw n random hex digits instead of reading an argument")
	seed       = flag.Uint64("seed", 1, "seed for -random")
	statsPath  = flag.String("stats", "", "write an HTML chart of the operation mix to file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <hex-input>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	input, err := Input(flag.Args(), *randomLen, *seed)
	if err != nil {
		flag.Usage()
		log.Fatal(err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(input); err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}

func run(input []byte) error {
	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	diag := log.New(os.Stderr, "warning: ", 0)
	ops, path := cfg.Canvas.Sketch(input, *workers, diag)

	if err := Save(*output, cfg, path); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}

	if *statsPath != "" {
		if err := writeStats(*statsPath, Analyse(ops, path)); err != nil {
			return fmt.Errorf("write %s: %w", *statsPath, err)
		}
	}
	return nil
}

func writeStats(filename string, stats Stats) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return stats.RenderChart(f)
}
