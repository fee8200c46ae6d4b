package jdep

import "time"

// Region reporting thresholds in percent. A region set is only reported
// when the matching emission probability strictly exceeds the threshold;
// a probability of exactly 10.0% reports no "all" regions.
const (
	allRegionThreshold   = 10.0
	nonIoRegionThreshold = 5.0
)

// unlabeledNonIo is reported when the emission probability clears the
// threshold but the coordinate falls outside every labeled region. The
// extracted maps only label the strong Io and non-Io features, so this
// happens inside the broad unlabeled non-Io emission zone.
const unlabeledNonIo = "non-Io"

// DAMProbability returns the probability, in percent, of Jovian
// decametric emission at the given time. EmissionAll is looked up in the
// CML x Io phase map and EmissionNonIo in the CML x Ganymede phase map;
// any other emission type returns an *InputError, as do timestamps
// outside the supported epoch.
func (d *Dataset) DAMProbability(t time.Time, etype EmissionType) (float64, error) {
	switch etype {
	case EmissionAll:
		c, err := CurrentPhaseCoord(t, Io)
		if err != nil {
			return 0, err
		}
		return d.ProbabilityAll.Interp(c), nil
	case EmissionNonIo:
		c, err := CurrentPhaseCoord(t, Ganymede)
		if err != nil {
			return 0, err
		}
		return d.ProbabilityNonIo.Interp(c), nil
	}
	return 0, &InputError{
		What:   "emission type",
		Value:  etype.String(),
		Reason: "probabilities are extracted for all and non-io only",
	}
}

// DAMRegions returns the labels of the emission regions Jupiter sits in
// at the given time, such as "Io A" or "non-Io B'". EmissionAll reports
// both Io and non-Io regions, EmissionIo and EmissionNonIo restrict the
// result to one class.
//
// The result is empty unless the matching probability strictly exceeds
// 10% (EmissionAll, EmissionIo, both gated on the all-emission map) or 5%
// (EmissionNonIo). When the gate passes but no labeled region covers the
// coordinate, the single label "non-Io" is returned.
func (d *Dataset) DAMRegions(t time.Time, etype EmissionType) ([]string, error) {
	switch etype {
	case EmissionAll, EmissionIo, EmissionNonIo:
	default:
		return nil, &InputError{
			What:   "emission type",
			Value:  etype.String(),
			Reason: "must be one of all, io, non-io",
		}
	}

	cml, err := JupiterCML(t)
	if err != nil {
		return nil, err
	}
	iphase, err := Io.Phase(t)
	if err != nil {
		return nil, err
	}
	gphase, err := Ganymede.Phase(t)
	if err != nil {
		return nil, err
	}
	ioCoord := PhaseCoord{CML: cml, Phase: iphase}
	nonIoCoord := PhaseCoord{CML: cml, Phase: gphase}

	switch etype {
	case EmissionAll, EmissionIo:
		if d.ProbabilityAll.Interp(ioCoord) <= allRegionThreshold {
			return nil, nil
		}
	case EmissionNonIo:
		if d.ProbabilityNonIo.Interp(nonIoCoord) <= nonIoRegionThreshold {
			return nil, nil
		}
	}

	var regions []string
	if etype == EmissionAll || etype == EmissionIo {
		regions = append(regions, d.RegionsIo.Nearest(ioCoord).Labels("Io")...)
	}
	if etype == EmissionAll || etype == EmissionNonIo {
		regions = append(regions, d.RegionsNonIo.Nearest(nonIoCoord).Labels("non-Io")...)
	}
	if len(regions) == 0 {
		regions = []string{unlabeledNonIo}
	}
	return regions, nil
}
