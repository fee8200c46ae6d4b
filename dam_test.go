package jdep

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

const probTol = 5.0 // percent, the reference values are read off a color map

func TestDAMProbabilityReference(t *testing.T) {
	for _, ref := range refEphem {
		dt := mustParse(t, ref.stamp)
		pAll, err := DAMProbability(dt, EmissionAll)
		if err != nil {
			t.Fatalf("DAMProbability(%s, all): %s", ref.stamp, err)
		}
		if pAll < ref.probAll-probTol || pAll > ref.probAll+probTol {
			t.Fatalf("all probability at %s: got %.2f, expected %.0f +/- %.0f", ref.stamp, pAll, ref.probAll, probTol)
		}
		pNon, err := DAMProbability(dt, EmissionNonIo)
		if err != nil {
			t.Fatalf("DAMProbability(%s, non-io): %s", ref.stamp, err)
		}
		if pNon < ref.probNon-probTol || pNon > ref.probNon+probTol {
			t.Fatalf("non-Io probability at %s: got %.2f, expected %.0f +/- %.0f", ref.stamp, pNon, ref.probNon, probTol)
		}
	}
}

func TestDAMRegionsReference(t *testing.T) {
	for _, ref := range refEphem {
		dt := mustParse(t, ref.stamp)
		regions, err := DAMRegions(dt, EmissionAll)
		if err != nil {
			t.Fatalf("DAMRegions(%s, all): %s", ref.stamp, err)
		}
		if !reflect.DeepEqual(regions, ref.regionsAll) {
			t.Fatalf("regions at %s: got %v, expected %v", ref.stamp, regions, ref.regionsAll)
		}
	}
}

func TestDAMProbabilityRange(t *testing.T) {
	dt := time.Date(2003, 4, 5, 6, 7, 8, 0, time.UTC)
	for i := 0; i < 500; i++ {
		for _, etype := range []EmissionType{EmissionAll, EmissionNonIo} {
			p, err := DAMProbability(dt, etype)
			if err != nil {
				t.Fatalf("DAMProbability(%s, %s): %s", dt, etype, err)
			}
			if p < 0 || p > 100 {
				t.Fatalf("probability %f at %s (%s) not in [0, 100]", p, dt, etype)
			}
		}
		dt = dt.Add(19*time.Hour + 47*time.Minute)
	}
}

func TestDAMIdempotent(t *testing.T) {
	dt := mustParse(t, "2025/3/10 00:00:00")
	for _, etype := range []EmissionType{EmissionAll, EmissionNonIo} {
		p1, err := DAMProbability(dt, etype)
		if err != nil {
			t.Fatalf("DAMProbability: %s", err)
		}
		p2, _ := DAMProbability(dt, etype)
		if p1 != p2 {
			t.Fatalf("repeated call drifted: %v vs %v", p1, p2)
		}
	}
	r1, err := DAMRegions(dt, EmissionAll)
	if err != nil {
		t.Fatalf("DAMRegions: %s", err)
	}
	r2, _ := DAMRegions(dt, EmissionAll)
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("repeated call drifted: %v vs %v", r1, r2)
	}
}

// Region label vocabulary for both emission classes plus the unlabeled
// fallback.
var regionVocabulary = map[string]bool{
	"Io A": true, "Io A'": true, `Io A"`: true, "Io B": true,
	"Io B'": true, "Io C": true, "Io D": true,
	"non-Io A": true, "non-Io A'": true, `non-Io A"`: true, "non-Io B": true,
	"non-Io B'": true, "non-Io C": true, "non-Io D": true,
	"non-Io": true,
}

func TestDAMExampleQuery(t *testing.T) {
	dt := mustParse(t, "2025/3/10 00:00:00")
	p, err := DAMProbability(dt, EmissionAll)
	if err != nil {
		t.Fatalf("DAMProbability: %s", err)
	}
	if p < 0 || p > 100 {
		t.Fatalf("probability %f not in [0, 100]", p)
	}
	regions, err := DAMRegions(dt, EmissionAll)
	if err != nil {
		t.Fatalf("DAMRegions: %s", err)
	}
	for _, r := range regions {
		if !regionVocabulary[r] {
			t.Fatalf("region %q is not in the fixed label vocabulary", r)
		}
	}
}

func TestDAMUnknownEmissionType(t *testing.T) {
	dt := mustParse(t, "2025/3/10 00:00:00")
	var ierr *InputError
	if _, err := DAMProbability(dt, EmissionType(42)); !errors.As(err, &ierr) {
		t.Fatalf("DAMProbability with a bogus type returned %v, expected an *InputError", err)
	}
	// EmissionIo selects regions only; there is no Io-only probability map.
	if _, err := DAMProbability(dt, EmissionIo); !errors.As(err, &ierr) {
		t.Fatalf("DAMProbability(io) returned %v, expected an *InputError", err)
	}
	if _, err := DAMRegions(dt, EmissionType(42)); !errors.As(err, &ierr) {
		t.Fatalf("DAMRegions with a bogus type returned %v, expected an *InputError", err)
	}
	if _, err := ParseEmissionType("bogus"); !errors.As(err, &ierr) {
		t.Fatalf("ParseEmissionType(bogus) did not return an *InputError")
	}
}

func TestDAMOutsideEpoch(t *testing.T) {
	dt := time.Date(2120, 1, 1, 0, 0, 0, 0, time.UTC)
	var ierr *InputError
	if _, err := DAMProbability(dt, EmissionAll); !errors.As(err, &ierr) {
		t.Fatalf("DAMProbability outside the epoch returned %v, expected an *InputError", err)
	}
	if _, err := DAMRegions(dt, EmissionAll); !errors.As(err, &ierr) {
		t.Fatalf("DAMRegions outside the epoch returned %v, expected an *InputError", err)
	}
}

func TestParseEmissionType(t *testing.T) {
	for _, c := range []struct {
		in   string
		want EmissionType
	}{
		{"all", EmissionAll}, {"io", EmissionIo}, {"non-io", EmissionNonIo},
		{"ALL", EmissionAll}, {" non-io ", EmissionNonIo}, {"nonio", EmissionNonIo},
	} {
		got, err := ParseEmissionType(c.in)
		if err != nil {
			t.Fatalf("ParseEmissionType(%q): %s", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseEmissionType(%q) = %s, expected %s", c.in, got, c.want)
		}
	}
}

// uniformDataset builds a dataset whose probability maps hold a single
// value everywhere and whose region masks are empty.
func uniformDataset(pAll, pNonIo float64) *Dataset {
	const n = 4
	grid := func(v float64) *Grid {
		vals := make([]float64, n*n)
		for k := range vals {
			vals[k] = v
		}
		return newGrid(vals, n)
	}
	return &Dataset{
		ProbabilityAll:   grid(pAll),
		ProbabilityNonIo: grid(pNonIo),
		RegionsIo:        newRegionMask(make([]RegionBits, n*n), n),
		RegionsNonIo:     newRegionMask(make([]RegionBits, n*n), n),
	}
}

// The reporting thresholds are exclusive: a probability of exactly 10.0%
// ("all") or 5.0% ("non-io") reports nothing.
func TestDAMRegionThresholdExclusive(t *testing.T) {
	dt := mustParse(t, "2025/3/10 00:00:00")

	at := uniformDataset(10.0, 5.0)
	if regions, err := at.DAMRegions(dt, EmissionAll); err != nil || len(regions) != 0 {
		t.Fatalf("regions at exactly 10%% = %v (err %v), expected none", regions, err)
	}
	if regions, err := at.DAMRegions(dt, EmissionNonIo); err != nil || len(regions) != 0 {
		t.Fatalf("non-Io regions at exactly 5%% = %v (err %v), expected none", regions, err)
	}

	above := uniformDataset(10.5, 5.5)
	for _, etype := range []EmissionType{EmissionAll, EmissionIo, EmissionNonIo} {
		regions, err := above.DAMRegions(dt, etype)
		if err != nil {
			t.Fatalf("DAMRegions(%s): %s", etype, err)
		}
		// The masks are empty, so the unlabeled fallback is reported.
		if !reflect.DeepEqual(regions, []string{"non-Io"}) {
			t.Fatalf("regions above threshold (%s) = %v, expected [non-Io]", etype, regions)
		}
	}

	below := uniformDataset(9.5, 4.5)
	for _, etype := range []EmissionType{EmissionAll, EmissionIo, EmissionNonIo} {
		if regions, err := below.DAMRegions(dt, etype); err != nil || len(regions) != 0 {
			t.Fatalf("regions below threshold (%s) = %v (err %v), expected none", etype, regions, err)
		}
	}
}
