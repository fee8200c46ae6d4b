// Package jdep estimates the probability of Jovian decametric (DAM)
// emission for observation planning.
//
// The estimate is a lookup into probability and region maps extracted
// from Figure 1 of Zarka et al. 2018, A&A, 618, A84, indexed by Jupiter's
// System III central meridian longitude and the orbital phase of Io (all
// emission) or Ganymede (non-Io emission). Both angles are computed from
// analytic series accurate to about a degree against reference ephemeris
// services between 2000 and 2075; timestamps outside that window are
// rejected.
//
//	t, err := jdep.ParseTime("2025/3/10 00:00:00")
//	if err != nil { ... }
//	p, err := jdep.DAMProbability(t, jdep.EmissionAll)
//	regions, err := jdep.DAMRegions(t, jdep.EmissionAll)
//
// All queries are pure functions of the timestamp and the bundled
// read-only dataset, so the package is safe for concurrent use.
package jdep

import "time"

// DAMProbability returns the probability, in percent, of Jovian
// decametric emission at the given time, looked up in the bundled
// dataset. See Dataset.DAMProbability.
func DAMProbability(t time.Time, etype EmissionType) (float64, error) {
	return DefaultDataset().DAMProbability(t, etype)
}

// DAMRegions returns the labels of the emission regions Jupiter sits in
// at the given time, looked up in the bundled dataset. See
// Dataset.DAMRegions.
func DAMRegions(t time.Time, etype EmissionType) ([]string, error) {
	return DefaultDataset().DAMRegions(t, etype)
}
