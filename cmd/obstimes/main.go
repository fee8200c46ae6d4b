package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"

	"github.com/lwa-project/jdep"
)

// This command scans a UTC date for the times most favorable to observing
// Jovian decametric emission and prints them with their probabilities and
// active regions.

var (
	nonIo    bool
	cfgFile  string
	stepFlag time.Duration
	verbose  bool
)

func init() {
	flag.BoolVar(&nonIo, "non-io", false, "only consider non-Io emission")
	flag.StringVar(&cfgFile, "config", "", "optional TOML configuration file")
	flag.DurationVar(&stepFlag, "step", 15*time.Minute, "scan cadence")
	flag.BoolVar(&verbose, "verbose", false, "log every kept slot as it is found")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] date\n\nFind times with the highest probability of Jovian decametric emission\non a UTC date given as YYYY/MM/DD or YYYY-MM-DD.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	step := stepFlag
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("%s: %s", cfgFile, err)
		}
		if s := viper.GetDuration("scan.step"); s > 0 {
			step = s
		}
		if verbose {
			log.Printf("[conf] scan cadence: %s", step)
		}
	}

	start, err := jdep.ParseTime(flag.Arg(0))
	if err != nil {
		log.Fatalf("could not understand date `%s`: %s", flag.Arg(0), err)
	}
	end := start.Add(24*time.Hour - step)

	etype := jdep.EmissionIo
	if nonIo {
		etype = jdep.EmissionNonIo
	}

	var logger kitlog.Logger
	if verbose {
		logger = kitlog.NewLogfmtLogger(os.Stderr)
	}

	finder := jdep.NewObsTimeFinder(nil, logger)
	slots, err := finder.Find(start, end, step, etype)
	if err != nil {
		log.Fatalf("scan failed: %s", err)
	}
	if len(slots) == 0 {
		fmt.Println("Nothing found with a high enough emission probability")
		return
	}
	for _, s := range slots {
		fmt.Printf("%s with %.0f%% from %s\n",
			s.Time.Format("2006/01/02 15:04:05"), s.Probability, strings.Join(s.Regions, ", "))
	}
}
