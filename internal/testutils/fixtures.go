package testutils

import "github.com/thermalab/hxcore/internal/domain"

// ReferenceTube returns a 25x2 mm tube, 3 m long with 2.8 m effective.
// Tests that need a valid tube without caring about its dimensions use it.
func ReferenceTube() domain.TubeGeometry {
	tube, err := domain.NewTubeGeometry(0.025, 0.002, 3.0, 2.8)
	if err != nil {
		panic(err)
	}
	return tube
}

// ReferenceBundle returns a 10x8 inline bundle with two equal passes in the
// given arrangement.
func ReferenceBundle(arrangement domain.FlowArrangement) domain.TubeBundle {
	bundle, err := domain.NewEqualPassBundle(
		ReferenceTube(), 10, 8, 0.05, 0.05, domain.LayoutInline, 2, arrangement)
	if err != nil {
		panic(err)
	}
	return bundle
}

// ReferenceStreams returns hot water at 353.15 K / 2 kg/s and cold air at
// 293.15 K / 1 kg/s, both at atmospheric pressure.
func ReferenceStreams() (hot, cold domain.StreamState) {
	hot, err := domain.NewStreamState("water", 2.0, 353.15, 101325)
	if err != nil {
		panic(err)
	}
	cold, err = domain.NewStreamState("air", 1.0, 293.15, 101325)
	if err != nil {
		panic(err)
	}
	return hot, cold
}
