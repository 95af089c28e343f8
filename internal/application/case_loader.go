package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/thermalab/hxcore/internal/domain"
)

// Case is one fully constructed rating case: validated geometry, the two
// streams, and the solve options. Cases are immutable once built.
type Case struct {
	// Name labels the case in sweep summaries and CLI output.
	Name string

	// Bundle is the validated exchanger geometry.
	Bundle domain.TubeBundle

	// Hot and Cold are the validated stream definitions.
	Hot  domain.StreamState
	Cold domain.StreamState

	// Options are the normalized solve options.
	Options domain.SolveOptions
}

// tubeConfig mirrors the tube section of a case document.
type tubeConfig struct {
	OuterDiameter   float64 `yaml:"outer_diameter" validate:"gt=0"`
	WallThickness   float64 `yaml:"wall_thickness" validate:"gt=0"`
	TotalLength     float64 `yaml:"total_length" validate:"gt=0"`
	EffectiveLength float64 `yaml:"effective_length" validate:"gt=0"`
}

// bundleConfig mirrors the bundle section. Exactly one of passes or
// pass_tube_counts describes the partition.
type bundleConfig struct {
	Tube              tubeConfig `yaml:"tube" validate:"required"`
	Rows              int        `yaml:"rows" validate:"gt=0"`
	TubesPerRow       int        `yaml:"tubes_per_row" validate:"gt=0"`
	TransversePitch   float64    `yaml:"transverse_pitch" validate:"gt=0"`
	LongitudinalPitch float64    `yaml:"longitudinal_pitch" validate:"gt=0"`
	Layout            string     `yaml:"layout" validate:"required,oneof=inline staggered"`
	Passes            int        `yaml:"passes" validate:"gte=0"`
	PassTubeCounts    []int      `yaml:"pass_tube_counts"`
	Arrangement       string     `yaml:"arrangement" validate:"required,oneof=counterflow cocurrent crossflow_both_mixed"`
}

// streamConfig mirrors one stream section.
type streamConfig struct {
	FluidID   string  `yaml:"fluid" validate:"required"`
	MassFlow  float64 `yaml:"mass_flow" validate:"gt=0"`
	InletTemp float64 `yaml:"inlet_temp" validate:"gt=0"`
	Pressure  float64 `yaml:"pressure" validate:"gt=0"`
}

// optionsConfig mirrors the options section. WarnOnApplicability is a
// pointer so an absent key keeps the documented default of true.
type optionsConfig struct {
	TubeSide            string  `yaml:"tube_side" validate:"omitempty,oneof=hot cold"`
	InternalCorrelation string  `yaml:"internal_correlation"`
	ExternalCorrelation string  `yaml:"external_correlation"`
	WallConductivity    float64 `yaml:"wall_conductivity" validate:"gte=0"`
	WarnOnApplicability *bool   `yaml:"warn_on_applicability"`
	InletLossCoeff      float64 `yaml:"inlet_loss_coeff" validate:"gte=0"`
	OutletLossCoeff     float64 `yaml:"outlet_loss_coeff" validate:"gte=0"`
	ReturnLossCoeff     float64 `yaml:"return_loss_coeff" validate:"gte=0"`
	OutsideLossCoeff    float64 `yaml:"outside_loss_coeff" validate:"gte=0"`
}

// caseConfig is the root of a case document.
type caseConfig struct {
	Name    string        `yaml:"name" validate:"required"`
	Bundle  bundleConfig  `yaml:"bundle" validate:"required"`
	Hot     streamConfig  `yaml:"hot" validate:"required"`
	Cold    streamConfig  `yaml:"cold" validate:"required"`
	Options optionsConfig `yaml:"options"`
}

// CaseLoader parses, validates and caches YAML case documents. Identical
// documents (by SHA-256 of the normalized config) are built once;
// singleflight collapses concurrent loads of the same document.
type CaseLoader struct {
	validator *validator.Validate

	cache   map[string]*Case
	cacheMu sync.RWMutex

	sf singleflight.Group
}

// NewCaseLoader creates a loader with an empty cache.
func NewCaseLoader() *CaseLoader {
	return &CaseLoader{
		validator: validator.New(),
		cache:     make(map[string]*Case),
	}
}

// LoadFromFile loads one case document from a YAML file.
func (cl *CaseLoader) LoadFromFile(ctx context.Context, path string) (*Case, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	return cl.load(ctx, data)
}

// LoadFromReader loads one case document from a reader.
func (cl *CaseLoader) LoadFromReader(ctx context.Context, r io.Reader) (*Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read case document: %w", err)
	}
	return cl.load(ctx, data)
}

// load parses the document, hashes the normalized config, and builds the
// case once per distinct document. The returned case is a pointer to a
// cached instance and must not be mutated.
func (cl *CaseLoader) load(_ context.Context, data []byte) (*Case, error) {
	var config caseConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse case YAML: %w", err)
	}

	hash, err := configHash(config)
	if err != nil {
		return nil, err
	}

	v, err, _ := cl.sf.Do(hash, func() (any, error) {
		if c, ok := cl.cached(hash); ok {
			return c, nil
		}
		if err := cl.validator.Struct(config); err != nil {
			return nil, fmt.Errorf("case validation failed: %w", err)
		}
		c, err := buildCase(config)
		if err != nil {
			return nil, err
		}
		cl.cacheMu.Lock()
		cl.cache[hash] = c
		cl.cacheMu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Case), nil
}

func (cl *CaseLoader) cached(hash string) (*Case, bool) {
	cl.cacheMu.RLock()
	defer cl.cacheMu.RUnlock()
	c, ok := cl.cache[hash]
	return c, ok
}

// configHash hashes the re-marshaled config so formatting differences in
// the source document do not defeat the cache.
func configHash(config caseConfig) (string, error) {
	normalized, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to normalize case config: %w", err)
	}
	sum := sha256.Sum256(normalized)
	return hex.EncodeToString(sum[:]), nil
}

// buildCase converts a validated document into domain values. The domain
// constructors re-check the semantic invariants (partition consistency,
// effective vs total length) and fail fast with the taxonomy errors.
func buildCase(config caseConfig) (*Case, error) {
	tube, err := domain.NewTubeGeometry(
		config.Bundle.Tube.OuterDiameter,
		config.Bundle.Tube.WallThickness,
		config.Bundle.Tube.TotalLength,
		config.Bundle.Tube.EffectiveLength,
	)
	if err != nil {
		return nil, err
	}

	arrangement, err := domain.ParseFlowArrangement(config.Bundle.Arrangement)
	if err != nil {
		return nil, domain.NewGeometryError("arrangement", err)
	}

	var bundle domain.TubeBundle
	switch {
	case len(config.Bundle.PassTubeCounts) > 0 && config.Bundle.Passes > 0:
		return nil, domain.NewGeometryError("passes",
			fmt.Errorf("%w: specify passes or pass_tube_counts, not both", domain.ErrPassPartition))
	case len(config.Bundle.PassTubeCounts) > 0:
		bundle, err = domain.NewTubeBundle(tube,
			config.Bundle.Rows, config.Bundle.TubesPerRow,
			config.Bundle.TransversePitch, config.Bundle.LongitudinalPitch,
			domain.TubeLayout(config.Bundle.Layout),
			config.Bundle.PassTubeCounts, arrangement)
	default:
		passes := config.Bundle.Passes
		if passes == 0 {
			passes = 1
		}
		bundle, err = domain.NewEqualPassBundle(tube,
			config.Bundle.Rows, config.Bundle.TubesPerRow,
			config.Bundle.TransversePitch, config.Bundle.LongitudinalPitch,
			domain.TubeLayout(config.Bundle.Layout),
			passes, arrangement)
	}
	if err != nil {
		return nil, err
	}

	hot, err := domain.NewStreamState(config.Hot.FluidID, config.Hot.MassFlow,
		config.Hot.InletTemp, config.Hot.Pressure)
	if err != nil {
		return nil, err
	}
	cold, err := domain.NewStreamState(config.Cold.FluidID, config.Cold.MassFlow,
		config.Cold.InletTemp, config.Cold.Pressure)
	if err != nil {
		return nil, err
	}

	opts := domain.DefaultSolveOptions()
	if config.Options.TubeSide != "" {
		opts.TubeSide = domain.TubeSide(config.Options.TubeSide)
	}
	opts.InternalCorrelation = config.Options.InternalCorrelation
	opts.ExternalCorrelation = config.Options.ExternalCorrelation
	opts.WallConductivity = config.Options.WallConductivity
	if config.Options.WarnOnApplicability != nil {
		opts.WarnOnApplicability = *config.Options.WarnOnApplicability
	}
	opts.InletLossCoeff = config.Options.InletLossCoeff
	opts.OutletLossCoeff = config.Options.OutletLossCoeff
	opts.ReturnLossCoeff = config.Options.ReturnLossCoeff
	opts.OutsideLossCoeff = config.Options.OutsideLossCoeff

	return &Case{
		Name:    config.Name,
		Bundle:  bundle,
		Hot:     hot,
		Cold:    cold,
		Options: opts,
	}, nil
}
