package jdep

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

const deg2rad = math.Pi / 180

// The CML series and the satellite phase series (Meeus, Astronomical
// Algorithms, chapter 44, lower accuracy method) are fitted around the
// current epoch. Within this window they stay within about a degree of
// the reference ephemeris services; outside it the error grows without
// bound, so such timestamps are rejected rather than extrapolated.
var (
	epochMin = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	epochMax = time.Date(2076, 1, 1, 0, 0, 0, 0, time.UTC)
)

// timeLayouts lists the accepted timestamp string forms, tried in order.
// All are interpreted as UTC.
var timeLayouts = []string{
	"2006/1/2 15:4:5",
	"2006-1-2 15:4:5",
	"2006-1-2T15:4:5",
	time.RFC3339,
	"2006/1/2",
	"2006-1-2",
}

// ParseTime converts a timestamp string such as "2025/3/10 00:00:00" or
// "2025-03-10T00:00:00" to a UTC time.Time. It returns an *InputError if
// the string matches none of the accepted layouts.
func ParseTime(stamp string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, stamp); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &InputError{What: "timestamp", Value: stamp, Reason: "not an ISO or ISO-T date/time"}
}

// TimeFromMJD converts a modified Julian date to a UTC time.Time.
func TimeFromMJD(mjd float64) time.Time {
	return julian.JDToTime(mjd + 2400000.5)
}

// MJDFromTime converts a time.Time to a modified Julian date.
func MJDFromTime(t time.Time) float64 {
	return julian.TimeToJD(t.UTC()) - 2400000.5
}

func checkEpoch(t time.Time) error {
	if t.Before(epochMin) || !t.Before(epochMax) {
		return &InputError{
			What:   "timestamp",
			Value:  t.UTC().Format("2006-01-02 15:04:05"),
			Reason: "outside the supported 2000 through 2075 epoch",
		}
	}
	return nil
}

// JupiterCML returns Jupiter's System III central meridian longitude in
// degrees, normalized to [0, 360), at the given time. The value may
// diverge from an external reference ephemeris by up to about a degree
// over the supported epoch. Timestamps outside 2000 through 2075 return
// an *InputError.
func JupiterCML(t time.Time) (float64, error) {
	if err := checkEpoch(t); err != nil {
		return 0, err
	}
	return cmlDeg(julian.TimeToJD(t.UTC())), nil
}

// cmlDeg implements the System III rotation series from
// https://www.projectpluto.com/grs_form.htm. The additional -eqnCenter
// term brings the values in line with the obspm Jupiter probability tool.
func cmlDeg(jd float64) float64 {
	jupMean := (jd - 2455636.938) * 360 / 4332.89709
	eqnCenter := 5.55 * sind(jupMean)
	angle := (jd-2451870.628)*360/398.884 - eqnCenter
	correction := 11*sind(angle) + 5*cosd(angle) - 1.25*cosd(jupMean) - eqnCenter
	return norm360(138.41 + 870.4535567*jd + correction - eqnCenter)
}

// Satellite identifies one of the Galilean moons.
type Satellite uint8

const (
	Io Satellite = iota
	Europa
	Ganymede
	Callisto
)

var satNames = [...]string{"Io", "Europa", "Ganymede", "Callisto"}

func (s Satellite) String() string {
	if int(s) < len(satNames) {
		return satNames[s]
	}
	return fmt.Sprintf("Satellite(%d)", uint8(s))
}

// Phase returns the geocentric orbital phase of the satellite in degrees,
// measured from superior conjunction and normalized to [0, 360).
func (s Satellite) Phase(t time.Time) (float64, error) {
	if int(s) >= len(satNames) {
		return 0, &InputError{What: "satellite", Value: s.String(), Reason: "not a Galilean moon"}
	}
	if err := checkEpoch(t); err != nil {
		return 0, err
	}
	return satPhases(julian.TimeToJD(t.UTC()))[s], nil
}

// IoPhase returns the orbital phase of Io in degrees at the given time.
func IoPhase(t time.Time) (float64, error) { return Io.Phase(t) }

// GanymedePhase returns the orbital phase of Ganymede in degrees at the
// given time.
func GanymedePhase(t time.Time) (float64, error) { return Ganymede.Phase(t) }

// satPhases computes the phases of the four Galilean moons following the
// lower accuracy method of Meeus chapter 44. The u angles of that method
// are measured from inferior conjunction, so the phase from superior
// conjunction is u + 180.
func satPhases(jd float64) [4]float64 {
	d := jd - 2451545.0
	V := 172.74 + 0.00111588*d
	M := 357.529 + 0.9856003*d
	N := 20.020 + 0.0830853*d + 0.329*sind(V)
	J := 66.115 + 0.9025179*d - 0.329*sind(V)
	A := 1.915*sind(M) + 0.020*sind(2*M)
	B := 5.555*sind(N) + 0.168*sind(2*N)
	K := J + A - B
	R := 1.00014 - 0.01671*cosd(M) - 0.00014*cosd(2*M)
	r := 5.20872 - 0.25208*cosd(N) - 0.00611*cosd(2*N)
	Δ := math.Sqrt(r*r + R*R - 2*r*R*cosd(K))
	ψ := math.Asin(R/Δ*sind(K)) / deg2rad
	dτ := d - Δ/173 // light time correction

	u := [4]float64{
		163.8069 + 203.4058646*dτ + ψ - B,
		358.4140 + 101.2916335*dτ + ψ - B,
		5.7176 + 50.2345180*dτ + ψ - B,
		224.8092 + 21.4879800*dτ + ψ - B,
	}
	G := 331.18 + 50.310482*dτ
	H := 87.45 + 21.569231*dτ
	u[0] += 0.473 * sind(2*(u[0]-u[1]))
	u[1] += 1.065 * sind(2*(u[1]-u[2]))
	u[2] += 0.165 * sind(G)
	u[3] += 0.843 * sind(H)

	for i, ui := range u {
		u[i] = norm360(ui + 180)
	}
	return u
}

// PhaseCoord is a position in the (CML, satellite phase) plane, both in
// degrees. The plane is periodic in both directions.
type PhaseCoord struct {
	CML   float64
	Phase float64
}

// CurrentPhaseCoord returns where Jupiter sits in the (CML, phase) plane
// of the given satellite at time t. This is the coordinate the lookup
// grids are indexed by, and what a plotting layer marks as "now".
func CurrentPhaseCoord(t time.Time, sat Satellite) (PhaseCoord, error) {
	cml, err := JupiterCML(t)
	if err != nil {
		return PhaseCoord{}, err
	}
	phase, err := sat.Phase(t)
	if err != nil {
		return PhaseCoord{}, err
	}
	return PhaseCoord{CML: cml, Phase: phase}, nil
}

func sind(deg float64) float64 { return math.Sin(deg * deg2rad) }
func cosd(deg float64) float64 { return math.Cos(deg * deg2rad) }

// norm360 normalizes an angle in degrees to [0, 360).
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
