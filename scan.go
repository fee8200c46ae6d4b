package jdep

import (
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Observation planning keep thresholds, in percent. Slots below these are
// not worth scheduling and are dropped from scan results.
const (
	scanKeepAll   = 30.0
	scanKeepNonIo = 10.0
)

// ObsTime is one favorable observing slot found by an ObsTimeFinder.
type ObsTime struct {
	Time        time.Time
	Probability float64  // percent, for the scanned emission type
	Regions     []string // active region labels at this slot
}

// ObsTimeFinder scans time ranges for slots where decametric emission is
// likely. The zero value is not usable; construct with NewObsTimeFinder.
type ObsTimeFinder struct {
	ds     *Dataset
	logger kitlog.Logger
}

// NewObsTimeFinder returns a finder over the given dataset. A nil dataset
// selects the bundled one and a nil logger disables logging.
func NewObsTimeFinder(ds *Dataset, logger kitlog.Logger) *ObsTimeFinder {
	if ds == nil {
		ds = DefaultDataset()
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &ObsTimeFinder{ds: ds, logger: logger}
}

// Find steps through [start, end] at the given cadence and returns the
// slots whose emission probability reaches the keep threshold: 30% of the
// all-emission probability for EmissionAll and EmissionIo, 10% of the
// non-Io probability for EmissionNonIo. The returned slots carry the
// region labels for the requested emission type.
func (f *ObsTimeFinder) Find(start, end time.Time, step time.Duration, etype EmissionType) ([]ObsTime, error) {
	if step <= 0 {
		return nil, &InputError{What: "step", Value: step.String(), Reason: "must be positive"}
	}
	switch etype {
	case EmissionAll, EmissionIo, EmissionNonIo:
	default:
		return nil, &InputError{
			What:   "emission type",
			Value:  etype.String(),
			Reason: "must be one of all, io, non-io",
		}
	}
	probType, keep := EmissionAll, scanKeepAll
	if etype == EmissionNonIo {
		probType, keep = EmissionNonIo, scanKeepNonIo
	}

	var slots []ObsTime
	for t := start; !t.After(end); t = t.Add(step) {
		p, err := f.ds.DAMProbability(t, probType)
		if err != nil {
			return nil, err
		}
		if p < keep {
			continue
		}
		regions, err := f.ds.DAMRegions(t, etype)
		if err != nil {
			return nil, err
		}
		f.logger.Log("time", t.Format("2006/01/02 15:04:05"),
			"probability", p, "regions", strings.Join(regions, ","))
		slots = append(slots, ObsTime{Time: t, Probability: p, Regions: regions})
	}
	return slots, nil
}
