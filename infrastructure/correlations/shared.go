// Package correlations provides the closed set of named heat-transfer and
// friction correlations used by the rating engine, together with the pure
// regime-based selector that picks among them.
//
// Every correlation is a stateless pure function of its request. Each one
// declares a documented validity range; evaluating outside that range
// flags the result rather than clamping it or failing.
package correlations

import (
	"errors"
	"fmt"
	"math"
)

// Correlation identifiers. These are the only names the selector and the
// solve options recognize.
const (
	// NameLaminarConstWall is fully developed laminar flow in a circular
	// tube at constant wall temperature, Nu = 3.66.
	NameLaminarConstWall = "laminar_const_wall"

	// NameGnielinski is the Gnielinski turbulent tube correlation.
	NameGnielinski = "gnielinski"

	// NameDittusBoelter is the Dittus-Boelter turbulent tube correlation.
	NameDittusBoelter = "dittus_boelter"

	// NameZukauskas is the Zukauskas crossflow tube-bank correlation.
	NameZukauskas = "zukauskas"

	// NameKern is the Kern shell-side correlation.
	NameKern = "kern"

	// NameLaminarFriction is the Hagen-Poiseuille friction factor 64/Re.
	NameLaminarFriction = "laminar_poiseuille"

	// NamePetukhov is the explicit Petukhov smooth-tube friction factor.
	NamePetukhov = "petukhov"
)

// Selection errors.
var (
	// ErrUnknownCorrelation is returned when an override names a
	// correlation outside the closed set for that side.
	ErrUnknownCorrelation = errors.New("unknown correlation")
)

// validityRange documents the Reynolds and Prandtl bounds of a correlation.
// The zero Prandtl bounds mean "any Prandtl".
type validityRange struct {
	reMin, reMax float64
	prMin, prMax float64
}

// check reports whether (re, pr) lies inside the range and, when it does
// not, a note naming the violated bound.
func (r validityRange) check(re, pr float64) (bool, string) {
	if re < r.reMin || re > r.reMax {
		return false, fmt.Sprintf("Re=%.4g outside [%.4g, %.4g]", re, r.reMin, r.reMax)
	}
	if r.prMax > 0 && (pr < r.prMin || pr > r.prMax) {
		return false, fmt.Sprintf("Pr=%.4g outside [%.4g, %.4g]", pr, r.prMin, r.prMax)
	}
	return true, ""
}

// ReLaminarLimit is the conventional upper Reynolds bound of laminar tube
// flow. The selector switches from the laminar correlation to a turbulent
// one above it.
const ReLaminarLimit = 2300.0

// Reynolds returns Re = rho*v*D/mu. Inputs must be positive; constructors
// and property validation upstream guarantee that.
func Reynolds(rho, v, d, mu float64) float64 { return rho * v * d / mu }

// Prandtl returns Pr = cp*mu/k.
func Prandtl(cp, mu, k float64) float64 { return cp * mu / k }

// MeanVelocity returns v = m_dot/(rho*A).
func MeanVelocity(mDot, rho, area float64) float64 { return mDot / (rho * area) }

// DynamicPressure returns q = rho*v^2/2 [Pa].
func DynamicPressure(rho, v float64) float64 { return rho * v * v / 2 }

// petukhovFactor is the explicit smooth-tube Darcy friction factor
// f = (0.79*ln(Re) - 1.64)^-2 used both standalone and inside Gnielinski.
func petukhovFactor(re float64) float64 {
	t := 0.79*math.Log(re) - 1.64
	return 1 / (t * t)
}
