package correlations

import (
	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var (
	_ ports.FrictionCorrelation = (*LaminarFriction)(nil)
	_ ports.FrictionCorrelation = (*PetukhovFriction)(nil)
)

// LaminarFriction is the Hagen-Poiseuille Darcy friction factor f = 64/Re
// for fully developed laminar tube flow.
//
// Documented range: Re <= 2300.
type LaminarFriction struct{}

var laminarFrictionRange = validityRange{reMin: 0, reMax: ReLaminarLimit}

// Name returns the correlation identifier.
func (LaminarFriction) Name() string { return NameLaminarFriction }

// Evaluate returns f = 64/Re, flagging turbulent regimes.
func (LaminarFriction) Evaluate(reynolds float64) domain.CorrelationResult {
	inRange, note := laminarFrictionRange.check(reynolds, 0)
	return domain.CorrelationResult{
		Correlation:    NameLaminarFriction,
		FrictionFactor: 64 / reynolds,
		Reynolds:       reynolds,
		InRange:        inRange,
		RangeNote:      note,
	}
}

// PetukhovFriction is the explicit Petukhov smooth-tube Darcy friction
// factor f = (0.79*ln(Re) - 1.64)^-2, the companion of Gnielinski.
//
// Documented range: 3000 <= Re <= 5e6.
type PetukhovFriction struct{}

var petukhovRange = validityRange{reMin: 3000, reMax: 5e6}

// Name returns the correlation identifier.
func (PetukhovFriction) Name() string { return NamePetukhov }

// Evaluate returns the Petukhov friction factor, flagging regimes outside
// the documented turbulent band.
func (PetukhovFriction) Evaluate(reynolds float64) domain.CorrelationResult {
	inRange, note := petukhovRange.check(reynolds, 0)
	return domain.CorrelationResult{
		Correlation:    NamePetukhov,
		FrictionFactor: petukhovFactor(reynolds),
		Reynolds:       reynolds,
		InRange:        inRange,
		RangeNote:      note,
	}
}
