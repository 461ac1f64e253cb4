package skikt

import (
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when a module is created without a name.
var ErrEmptyName = errors.New("module name cannot be empty")

// NewModule creates an Fx module that resolves the effective configuration
// for targetPath under baseDir when the container builds, and supplies the
// *Result under the module name as a named tag. Diagnostics are logged at
// Warn level through the container's *slog.Logger when one is available.
//
// Call multiple times with different names to resolve several hierarchies
// in one application.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, baseDir, targetPath string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) (*Result, error) {
					if logger == nil {
						var options Options

						for _, apply := range opts {
							apply(&options)
						}

						logger = options.logger()
					}

					result, err := Merge(baseDir, targetPath, opts...)
					if err != nil {
						return nil, fmt.Errorf("module %q: %w", name, err)
					}

					for _, diagnostic := range result.Diagnostics {
						logger.Warn("configuration diagnostic",
							"module", name,
							"message", diagnostic,
						)
					}

					logger.Debug("configuration resolved",
						"module", name,
						"base", baseDir,
						"target", targetPath,
						"diagnostics", len(result.Diagnostics),
					)

					return result, nil
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(fmt.Sprintf(`name:%q`, name)),
			),
		),
	)
}
