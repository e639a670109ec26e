package vecgen

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/internal/util"
	"github.com/teranos/cvecgen/logger"
)

// Unit is one named output: a header/source pair covering Types in order
type Unit struct {
	Name     string     `json:"name" yaml:"name" toml:"name"`
	Includes []string   `json:"includes,omitempty" yaml:"includes,omitempty" toml:"includes"`
	Types    []TypeSpec `json:"types" yaml:"types" toml:"types"`
}

// Documents is the generated pair for one unit
type Documents struct {
	Unit   string
	Header string
	Source string
}

// Options tune generation for every unit of a run
type Options struct {
	// InitialCapacity is emitted as INITIAL_CAP; must be >= 1
	InitialCapacity int

	// Parallelism bounds how many units Run generates at once; <= 0 means unbounded
	Parallelism int
}

// DefaultOptions returns INITIAL_CAP 10 with unbounded parallelism
func DefaultOptions() Options {
	return Options{InitialCapacity: DefaultInitialCapacity}
}

// Validate checks the unit name, its includes and every spec, and that no
// two specs share a sanitized name.
func (u Unit) Validate() error {
	if !util.IsIdentifier(u.Name) {
		return errors.WithHint(
			errors.NewInvalidSpecError("unit name %q is not an identifier", u.Name),
			"the unit name becomes the file names and the include guard")
	}

	for _, inc := range u.Includes {
		if strings.TrimSpace(inc) == "" {
			return errors.NewInvalidSpecError("unit %s has an empty include", u.Name)
		}
	}

	seen := make(map[string]int, len(u.Types))
	for i, spec := range u.Types {
		if err := spec.Validate(); err != nil {
			return errors.Wrapf(err, "unit %s, type %d", u.Name, i)
		}
		if first, dup := seen[spec.SanitizedName]; dup {
			return errors.WithHint(
				errors.NewDuplicateNameError("unit %s declares %s twice (types %d and %d)",
					u.Name, spec.TypeName(), first, i),
				"each sanitized name may appear once per unit")
		}
		seen[spec.SanitizedName] = i
	}

	return nil
}

// ValidateUnits validates every unit and rejects units that would collide:
// the same name, names differing only in case (same files on
// case-insensitive filesystems), or the same include guard.
func ValidateUnits(units []Unit) error {
	names := make(map[string]string, len(units))
	guards := make(map[string]string, len(units))
	for _, u := range units {
		if err := u.Validate(); err != nil {
			return err
		}

		folded := strings.ToLower(u.Name)
		if first, dup := names[folded]; dup {
			if first == u.Name {
				return errors.NewDuplicateNameError("unit %s is configured twice", u.Name)
			}
			return errors.WithHint(
				errors.NewDuplicateNameError("units %s and %s differ only in case", first, u.Name),
				"file names must stay distinct on case-insensitive filesystems")
		}
		names[folded] = u.Name

		guard := Layout{Unit: u.Name}.Guard()
		if first, dup := guards[guard]; dup {
			return errors.WithHint(
				errors.NewDuplicateNameError("units %s and %s share the include guard %s", first, u.Name, guard),
				"rename one unit so the headers can be included together")
		}
		guards[guard] = u.Name
	}
	return nil
}

// Validate checks the options
func (o Options) Validate() error {
	if o.InitialCapacity < 1 {
		return errors.Newf("initial capacity must be >= 1, got %d", o.InitialCapacity)
	}
	return nil
}

// Generate validates u and renders its header and source
func Generate(u Unit, opts Options) (*Documents, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	log := logger.ComponentLogger("vecgen.render")

	declarations := make([]string, 0, len(u.Types))
	definitions := make([]string, 0, len(u.Types))
	for _, spec := range u.Types {
		decl, def := RenderSpec(spec)
		declarations = append(declarations, decl)
		definitions = append(definitions, def)
		log.Debugw("Rendered type",
			logger.FieldUnit, u.Name,
			logger.FieldTypeName, spec.TypeName(),
			logger.FieldElemType, spec.ElementType)
	}

	layout := Layout{
		Unit:            u.Name,
		Includes:        u.Includes,
		InitialCapacity: opts.InitialCapacity,
	}

	return &Documents{
		Unit:   u.Name,
		Header: AssembleHeader(layout, declarations),
		Source: AssembleSource(layout, definitions),
	}, nil
}

// Run generates every unit and hands each pair to w. Units share no state,
// so they are generated concurrently up to opts.Parallelism. The first
// failure cancels units that have not started yet.
func Run(ctx context.Context, units []Unit, w Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := ValidateUnits(units); err != nil {
		return err
	}

	log := logger.ComponentLogger("vecgen.driver")

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}

	for _, u := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			docs, err := Generate(u, opts)
			if err != nil {
				return err
			}
			if err := w.Write(ctx, docs); err != nil {
				return errors.Wrapf(err, "failed to write unit %s", u.Name)
			}

			log.Infow("Generated unit",
				logger.FieldUnit, u.Name,
				logger.FieldCount, len(u.Types),
				logger.FieldDurationMS, time.Since(start).Milliseconds())
			return nil
		})
	}

	return g.Wait()
}
