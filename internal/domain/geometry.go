package domain

import (
	"fmt"
	"math"
)

// All dimensions are SI: lengths in meters, areas in square meters.

// TubeGeometry is the immutable description of a single bare circular tube.
// Values are validated once at construction; every derived quantity is a
// pure function of the stored fields, never cached mutable state.
type TubeGeometry struct {
	// OuterDiameter is the tube outer diameter [m].
	OuterDiameter float64 `json:"outer_diameter"`

	// WallThickness is the tube wall thickness [m].
	WallThickness float64 `json:"wall_thickness"`

	// TotalLength is the full manufactured length of one tube [m], headers
	// included.
	TotalLength float64 `json:"total_length"`

	// EffectiveLength is the length participating in heat transfer [m].
	// Header and inactive regions make it shorter than TotalLength.
	EffectiveLength float64 `json:"effective_length"`
}

// NewTubeGeometry validates and returns a tube geometry.
// It returns a GeometryError when any dimension is non-positive, the wall
// leaves no open bore, or the effective length exceeds the total length.
func NewTubeGeometry(outerDiameter, wallThickness, totalLength, effectiveLength float64) (TubeGeometry, error) {
	switch {
	case outerDiameter <= 0:
		return TubeGeometry{}, NewGeometryError("outer_diameter", ErrNonPositiveDimension)
	case wallThickness <= 0:
		return TubeGeometry{}, NewGeometryError("wall_thickness", ErrNonPositiveDimension)
	case totalLength <= 0:
		return TubeGeometry{}, NewGeometryError("total_length", ErrNonPositiveDimension)
	case effectiveLength <= 0:
		return TubeGeometry{}, NewGeometryError("effective_length", ErrNonPositiveDimension)
	}
	if 2*wallThickness >= outerDiameter {
		return TubeGeometry{}, NewGeometryError("wall_thickness",
			fmt.Errorf("%w: wall leaves no inner bore", ErrNonPositiveDimension))
	}
	if effectiveLength > totalLength {
		return TubeGeometry{}, NewGeometryError("effective_length", ErrEffectiveLength)
	}
	return TubeGeometry{
		OuterDiameter:   outerDiameter,
		WallThickness:   wallThickness,
		TotalLength:     totalLength,
		EffectiveLength: effectiveLength,
	}, nil
}

// InnerDiameter returns the bore diameter [m].
func (t TubeGeometry) InnerDiameter() float64 {
	return t.OuterDiameter - 2*t.WallThickness
}

// FlowArea returns the internal cross-sectional flow area of one tube [m^2].
func (t TubeGeometry) FlowArea() float64 {
	d := t.InnerDiameter()
	return math.Pi * d * d / 4
}

// HydraulicDiameter returns the hydraulic diameter, which equals the inner
// diameter for a circular tube [m].
func (t TubeGeometry) HydraulicDiameter() float64 { return t.InnerDiameter() }

// InnerArea returns the inner heat-transfer area of one tube over the
// effective length [m^2].
func (t TubeGeometry) InnerArea() float64 {
	return math.Pi * t.InnerDiameter() * t.EffectiveLength
}

// OuterArea returns the outer heat-transfer area of one tube over the
// effective length [m^2].
func (t TubeGeometry) OuterArea() float64 {
	return math.Pi * t.OuterDiameter * t.EffectiveLength
}

// TubeBundle is the immutable multi-pass bundle description. The bundle owns
// one homogeneous tube geometry, a per-pass tube partition, and the flow
// arrangement; the arrangement is fixed at construction so the solver never
// infers topology.
type TubeBundle struct {
	// Tube is the homogeneous tube geometry shared by every tube.
	Tube TubeGeometry `json:"tube"`

	// Rows is the number of tube rows in the outside flow direction.
	Rows int `json:"rows"`

	// TubesPerRow is the number of tubes across the face.
	TubesPerRow int `json:"tubes_per_row"`

	// TransversePitch is the center-to-center spacing across the face [m].
	TransversePitch float64 `json:"transverse_pitch"`

	// LongitudinalPitch is the tube spacing in the outside flow direction [m].
	LongitudinalPitch float64 `json:"longitudinal_pitch"`

	// Layout is the tube grid pattern, inline or staggered.
	Layout TubeLayout `json:"layout"`

	// PassTubeCounts partitions the tubes among tube-side passes. Entry i is
	// the number of parallel tubes in pass i; the entries sum to
	// Rows*TubesPerRow.
	PassTubeCounts []int `json:"pass_tube_counts"`

	// Arrangement is the flow topology used by the thermal solver.
	Arrangement FlowArrangement `json:"arrangement"`
}

// NewTubeBundle validates and returns a bundle geometry.
// It returns a GeometryError when the row grid or pitches are non-positive,
// the layout or arrangement is unknown, or the pass partition does not sum
// to the grid's total tube count.
func NewTubeBundle(
	tube TubeGeometry,
	rows, tubesPerRow int,
	transversePitch, longitudinalPitch float64,
	layout TubeLayout,
	passTubeCounts []int,
	arrangement FlowArrangement,
) (TubeBundle, error) {
	if rows <= 0 {
		return TubeBundle{}, NewGeometryError("rows", ErrNonPositiveDimension)
	}
	if tubesPerRow <= 0 {
		return TubeBundle{}, NewGeometryError("tubes_per_row", ErrNonPositiveDimension)
	}
	if transversePitch <= 0 {
		return TubeBundle{}, NewGeometryError("transverse_pitch", ErrNonPositiveDimension)
	}
	if longitudinalPitch <= 0 {
		return TubeBundle{}, NewGeometryError("longitudinal_pitch", ErrNonPositiveDimension)
	}
	if transversePitch < tube.OuterDiameter || longitudinalPitch < tube.OuterDiameter {
		return TubeBundle{}, NewGeometryError("pitch",
			fmt.Errorf("%w: pitch smaller than tube outer diameter", ErrNonPositiveDimension))
	}
	if !layout.Valid() {
		return TubeBundle{}, NewGeometryError("layout",
			fmt.Errorf("layout must be %q or %q, got %q", LayoutInline, LayoutStaggered, layout))
	}
	if !arrangement.Valid() {
		return TubeBundle{}, NewGeometryError("arrangement",
			fmt.Errorf("%w: %q", ErrUnknownArrangement, arrangement))
	}
	if len(passTubeCounts) == 0 {
		return TubeBundle{}, NewGeometryError("pass_tube_counts",
			fmt.Errorf("%w: at least one pass required", ErrPassPartition))
	}

	total := rows * tubesPerRow
	sum := 0
	for i, n := range passTubeCounts {
		if n <= 0 {
			return TubeBundle{}, NewGeometryError("pass_tube_counts",
				fmt.Errorf("%w: pass %d has %d tubes", ErrPassPartition, i, n))
		}
		sum += n
	}
	if sum != total {
		return TubeBundle{}, NewGeometryError("pass_tube_counts",
			fmt.Errorf("%w: partition sums to %d, grid holds %d", ErrPassPartition, sum, total))
	}

	counts := make([]int, len(passTubeCounts))
	copy(counts, passTubeCounts)

	return TubeBundle{
		Tube:              tube,
		Rows:              rows,
		TubesPerRow:       tubesPerRow,
		TransversePitch:   transversePitch,
		LongitudinalPitch: longitudinalPitch,
		Layout:            layout,
		PassTubeCounts:    counts,
		Arrangement:       arrangement,
	}, nil
}

// NewEqualPassBundle builds a bundle whose tubes are split evenly among
// passes. The grid's total tube count must be divisible by passes.
func NewEqualPassBundle(
	tube TubeGeometry,
	rows, tubesPerRow int,
	transversePitch, longitudinalPitch float64,
	layout TubeLayout,
	passes int,
	arrangement FlowArrangement,
) (TubeBundle, error) {
	if passes <= 0 {
		return TubeBundle{}, NewGeometryError("passes", ErrNonPositiveDimension)
	}
	total := rows * tubesPerRow
	if total > 0 && total%passes != 0 {
		return TubeBundle{}, NewGeometryError("passes",
			fmt.Errorf("%w: %d tubes not divisible by %d passes", ErrPassPartition, total, passes))
	}
	counts := make([]int, passes)
	for i := range counts {
		counts[i] = total / passes
	}
	return NewTubeBundle(tube, rows, tubesPerRow, transversePitch, longitudinalPitch,
		layout, counts, arrangement)
}

// TubeCount returns the total number of tubes in the bundle.
func (b TubeBundle) TubeCount() int { return b.Rows * b.TubesPerRow }

// PassCount returns the number of tube-side passes.
func (b TubeBundle) PassCount() int { return len(b.PassTubeCounts) }

// ReturnCount returns the number of 180-degree returns between passes.
func (b TubeBundle) ReturnCount() int { return b.PassCount() - 1 }

// InnerArea returns the bundle inner heat-transfer area [m^2]. It scales
// linearly with tube count and effective length.
func (b TubeBundle) InnerArea() float64 {
	return float64(b.TubeCount()) * b.Tube.InnerArea()
}

// OuterArea returns the bundle outer heat-transfer area [m^2].
func (b TubeBundle) OuterArea() float64 {
	return float64(b.TubeCount()) * b.Tube.OuterArea()
}

// PassFlowArea returns the internal flow area of pass i [m^2].
func (b TubeBundle) PassFlowArea(i int) float64 {
	return float64(b.PassTubeCounts[i]) * b.Tube.FlowArea()
}

// MeanPassFlowArea returns the pass-averaged internal flow area [m^2]. The
// 0D thermal model uses it as the representative flow area when passes carry
// unequal tube counts.
func (b TubeBundle) MeanPassFlowArea() float64 {
	return float64(b.TubeCount()) * b.Tube.FlowArea() / float64(b.PassCount())
}

// FrontalArea returns the outside approach flow area [m^2]: face height
// (tubes per row times transverse pitch) times the effective tube length.
// Blockage by the tubes themselves is neglected in the 0D model.
func (b TubeBundle) FrontalArea() float64 {
	return float64(b.TubesPerRow) * b.TransversePitch * b.Tube.EffectiveLength
}

// WallResistance returns the total cylindrical-shell conduction resistance
// of the bundle [K/W] for a wall of thermal conductivity k [W/(m*K)].
// R = ln(Do/Di) / (2*pi*k*L_eff*N).
func (b TubeBundle) WallResistance(k float64) float64 {
	ratio := b.Tube.OuterDiameter / b.Tube.InnerDiameter()
	return math.Log(ratio) / (2 * math.Pi * k * b.Tube.EffectiveLength * float64(b.TubeCount()))
}
