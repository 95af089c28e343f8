package application

import "github.com/thermalab/hxcore/internal/domain"

// buildResult composes the final immutable snapshot. It is pure assembly:
// no computation of its own, every field populated, and upstream values
// carried through unmodified. A partially built result is never returned
// to the caller; the solve either yields this snapshot or an error.
func buildResult(
	bundle domain.TubeBundle,
	hot, cold domain.StreamState,
	tubeSide, outsideSide domain.SideDiagnostics,
	friction domain.CorrelationResult,
	thermal domain.ThermalResult,
	hydraulic domain.HydraulicResult,
	warnings []domain.ApplicabilityWarning,
) *domain.HXResult {
	return &domain.HXResult{
		Bundle:      bundle,
		Hot:         hot,
		Cold:        cold,
		TubeSide:    tubeSide,
		OutsideSide: outsideSide,
		Friction:    friction,
		Thermal:     thermal,
		Hydraulic:   hydraulic,
		Warnings:    warnings,
	}
}
