package correlations

import (
	"fmt"

	"github.com/thermalab/hxcore/internal/ports"
)

// The selector is a pure function of (regime, override): the candidate sets
// below are immutable package state, never mutated after init, and no
// result is cached across calls.
var (
	internalByName = map[string]ports.NusseltCorrelation{
		NameLaminarConstWall: LaminarConstWall{},
		NameGnielinski:       Gnielinski{},
		NameDittusBoelter:    DittusBoelter{},
	}

	externalByName = map[string]ports.NusseltCorrelation{
		NameZukauskas: Zukauskas{},
		NameKern:      Kern{},
	}
)

// SelectInternal resolves the tube-side Nusselt correlation. An empty
// override selects by regime: laminar constant-wall-temperature below the
// laminar limit, Gnielinski above it. A named override pins that
// correlation regardless of regime; range checking still applies at
// evaluation time.
func SelectInternal(reynolds float64, override string) (ports.NusseltCorrelation, error) {
	if override != "" {
		c, ok := internalByName[override]
		if !ok {
			return nil, fmt.Errorf("%w: internal correlation %q", ErrUnknownCorrelation, override)
		}
		return c, nil
	}
	if reynolds < ReLaminarLimit {
		return LaminarConstWall{}, nil
	}
	return Gnielinski{}, nil
}

// SelectExternal resolves the outside Nusselt correlation. An empty
// override selects Zukauskas, the tube-bank default.
func SelectExternal(override string) (ports.NusseltCorrelation, error) {
	if override != "" {
		c, ok := externalByName[override]
		if !ok {
			return nil, fmt.Errorf("%w: external correlation %q", ErrUnknownCorrelation, override)
		}
		return c, nil
	}
	return Zukauskas{}, nil
}

// SelectFriction resolves the tube-side Darcy friction correlation by
// regime: Hagen-Poiseuille below the laminar limit, Petukhov above it.
func SelectFriction(reynolds float64) ports.FrictionCorrelation {
	if reynolds < ReLaminarLimit {
		return LaminarFriction{}
	}
	return PetukhovFriction{}
}
