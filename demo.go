package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jhw/go-lafon/pkg/lafon"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Command line flags, defaulting to the environment configuration
	var (
		corpus     = flag.Int("corpus", 61449, "Corpus size T (tokens)")
		global     = flag.Int("global", 296, "Global frequency f of the word in the corpus")
		sample     = flag.Int("sample", 1084, "Sample size t (tokens)")
		local      = flag.Int("local", 5, "Local frequency k of the word in the sample")
		engine     = flag.String("engine", cfg.Engine, "Engine: auto, exact or approx")
		exactLimit = flag.Int("exact-limit", cfg.ExactLimit, "Largest corpus size served exactly in auto mode")
		precision  = flag.Int("precision", int(cfg.Precision), "Decimal places for the point probability")
		threshold  = flag.Float64("threshold", cfg.Threshold, "Specificity threshold")
		debug      = flag.Bool("debug", cfg.Debug, "Enable debug output during computation")
		table      = flag.Bool("table", false, "Print the full distribution over the support")
		asJSON     = flag.Bool("json", false, "Print the result as JSON")
	)
	flag.Parse()

	cfg.Engine = *engine
	cfg.ExactLimit = *exactLimit
	cfg.Precision = int32(*precision)
	cfg.Threshold = *threshold
	cfg.Debug = *debug

	options, err := cfg.options()
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	request := lafon.Request{
		Params: lafon.Params{
			CorpusSize: *corpus,
			GlobalFreq: *global,
			SampleSize: *sample,
		},
		LocalFreq: *local,
		Options:   options,
	}

	result, err := lafon.Compute(request)
	if err != nil {
		log.Fatalf("Specificity computation failed: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		return
	}

	displayResult(result)

	if *table {
		if err := displayDistribution(request); err != nil {
			log.Fatalf("Failed to compute distribution: %v", err)
		}
	}
}

func displayResult(result *lafon.Result) {
	fmt.Printf("📊 Lafon Specificity\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("T=%d f=%d t=%d k=%d (engine: %s)\n\n",
		result.Params.CorpusSize, result.Params.GlobalFreq, result.Params.SampleSize,
		result.LocalFreq, result.Engine)

	fmt.Printf("%-16s %s\n", "Prob(X = k)", result.PointDecimal.String())
	fmt.Printf("%-16s %.12f\n", "Prob(X <= k)", result.Cumulative)
	fmt.Printf("%-16s %.12f\n", "Prob(X > k)", result.Complement)
	fmt.Printf("%-16s %.12f\n", "Prob(X >= k)", result.AtLeast)
	fmt.Printf("%-16s %s (%s)\n", "Modal target", result.ModalTarget.FloatString(4), result.ModalTarget.RatString())
	fmt.Printf("%-16s %s\n", "Variance", result.Variance.FloatString(4))
	fmt.Printf("%-16s [%d, %d]\n", "Support", result.MinK, result.MaxK)
	fmt.Printf("%-16s %s\n", "Specificity", result.Specificity)
	fmt.Printf("\n✓ Computed in %v\n", result.ProcessingTime)
}

// displayDistribution prints Prob(X = k) and Prob(X <= k) for every k in the support
func displayDistribution(request lafon.Request) error {
	engine, err := lafon.SelectEngine(request.Options, request.Params)
	if err != nil {
		return err
	}

	p := request.Params
	fmt.Printf("\n📈 Distribution (%s engine)\n", engine.Name())
	fmt.Printf("%6s %16s %16s\n", "k", "Prob(X=k)", "Prob(X<=k)")
	fmt.Printf("%6s %16s %16s\n", "-", "---------", "----------")

	return lafon.Distribution(p.GlobalFreq, lafon.MaxK(p.SampleSize, p.GlobalFreq), p.CorpusSize, p.SampleSize, engine,
		func(k int, point, cum float64) {
			fmt.Printf("%6d %16.10f %16.10f\n", k, point, cum)
		})
}
