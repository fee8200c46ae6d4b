package jdep

import (
	"fmt"
	"strings"
)

// EmissionType selects which class of Jovian decametric emission a query
// refers to.
type EmissionType uint8

const (
	// EmissionAll selects all decametric emission, looked up in the
	// CML x Io phase probability map.
	EmissionAll EmissionType = iota + 1
	// EmissionIo selects only the Io-controlled emission regions. It is
	// valid for region queries; probabilities are only extracted for
	// EmissionAll and EmissionNonIo.
	EmissionIo
	// EmissionNonIo selects emission not associated with Io, which
	// correlates with the phase of Ganymede instead.
	EmissionNonIo
)

func (e EmissionType) String() string {
	switch e {
	case EmissionAll:
		return "all"
	case EmissionIo:
		return "io"
	case EmissionNonIo:
		return "non-io"
	}
	return fmt.Sprintf("EmissionType(%d)", uint8(e))
}

// ParseEmissionType converts an emission type selector string to an
// EmissionType. The recognized selectors are "all", "io" and "non-io".
func ParseEmissionType(s string) (EmissionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return EmissionAll, nil
	case "io":
		return EmissionIo, nil
	case "non-io", "nonio":
		return EmissionNonIo, nil
	}
	return 0, &InputError{What: "emission type", Value: s, Reason: "must be one of all, io, non-io"}
}
