package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lwa-project/jdep"
	damplot "github.com/lwa-project/jdep/plot"
)

// This command renders the DAM probability map, optionally with Jupiter's
// location or track over a time range, to an image or a standalone HTML
// page.

var (
	etypeFlag string
	dateFlag  string
	date2Flag string
	outFlag   string
	stepFlag  time.Duration
	width     float64
	height    float64
	regions   bool
)

func init() {
	flag.StringVar(&etypeFlag, "type", "all", "emission type to map (all or non-io)")
	flag.StringVar(&dateFlag, "date", "", "mark Jupiter's location at this UTC date/time")
	flag.StringVar(&date2Flag, "date2", "", "with -date, track the location up to this UTC date/time")
	flag.StringVar(&outFlag, "o", "jdep.png", "output file; .png, .svg, .pdf or .html")
	flag.DurationVar(&stepFlag, "step", 15*time.Minute, "track cadence")
	flag.Float64Var(&width, "width", 8, "image width in inches")
	flag.Float64Var(&height, "height", 6, "image height in inches")
	flag.BoolVar(&regions, "regions", false, "outline and label the emission regions")
}

func main() {
	flag.Parse()

	etype, err := jdep.ParseEmissionType(etypeFlag)
	if err != nil {
		log.Fatalf("could not understand emission type: %s", err)
	}

	out, err := os.Create(outFlag)
	if err != nil {
		log.Fatalf("could not create output: %s", err)
	}
	defer out.Close()

	format := strings.TrimPrefix(filepath.Ext(outFlag), ".")
	if format == "html" {
		if dateFlag != "" || regions {
			log.Print("[WARNING] location markers and region outlines are not drawn on HTML output")
		}
		if err := damplot.WriteHTML(out, nil, etype); err != nil {
			log.Fatalf("could not render map: %s", err)
		}
		return
	}

	p, err := damplot.ProbabilityMap(nil, etype)
	if err != nil {
		log.Fatalf("could not build map: %s", err)
	}

	if regions {
		mask := jdep.DefaultDataset().RegionsIo
		if etype == jdep.EmissionNonIo {
			mask = jdep.DefaultDataset().RegionsNonIo
		}
		if err := damplot.AddRegions(p, mask); err != nil {
			log.Fatalf("could not add regions: %s", err)
		}
	}

	if dateFlag != "" {
		start, err := jdep.ParseTime(dateFlag)
		if err != nil {
			log.Fatalf("could not understand date `%s`: %s", dateFlag, err)
		}
		end := start
		if date2Flag != "" {
			if end, err = jdep.ParseTime(date2Flag); err != nil {
				log.Fatalf("could not understand date2 `%s`: %s", date2Flag, err)
			}
		}
		sat := jdep.Io
		if etype == jdep.EmissionNonIo {
			sat = jdep.Ganymede
		}
		if err := damplot.AddTrack(p, sat, start, end, stepFlag); err != nil {
			log.Fatalf("could not add track: %s", err)
		}
	}

	if err := damplot.WriteImage(out, p, width, height, format); err != nil {
		log.Fatalf("could not render map: %s", err)
	}
}
