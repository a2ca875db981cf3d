package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/stepliteral/internal/config"
	"github.com/specialistvlad/stepliteral/internal/ctxlog"
	"github.com/specialistvlad/stepliteral/internal/render"
	"github.com/specialistvlad/stepliteral/internal/value"
	"golang.org/x/sync/errgroup"
)

// ErrNoSteps is returned when the step path holds no step blocks.
var ErrNoSteps = errors.New("no steps found")

// Run loads the configured steps and writes their rendered preambles to
// the output, in file order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, converter, err := a.loader.Load(ctx, a.config.StepPath)
	if err != nil {
		return fmt.Errorf("failed to load steps: %w", err)
	}

	steps, err := a.selectSteps(model)
	if err != nil {
		return err
	}

	target, err := render.ParseTarget(a.config.Target)
	if err != nil {
		return err
	}
	opts := render.Options{
		Prefix:  a.config.Prefix,
		Coercer: value.Chain(value.CoerceNative, value.CoerceGo, converter.Coerce),
	}

	rendered, err := a.renderAll(ctx, target, steps, opts)
	if err != nil {
		return err
	}
	if err := write(a.outW, steps, rendered); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Info("Steps rendered.", "target", string(target), "count", len(steps))
	return nil
}

func (a *App) selectSteps(model *config.Model) ([]*config.Step, error) {
	if a.config.StepName == "" {
		if len(model.Steps) == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoSteps, a.config.StepPath)
		}
		return model.Steps, nil
	}
	step, ok := model.Find(a.config.StepName)
	if !ok {
		return nil, fmt.Errorf("step %q not found in %s", a.config.StepName, a.config.StepPath)
	}
	return []*config.Step{step}, nil
}

// renderAll renders the steps concurrently, bounded by the worker count.
// Encoders are stateless, so steps need no coordination.
func (a *App) renderAll(ctx context.Context, target render.Target, steps []*config.Step, opts render.Options) ([]string, error) {
	out := make([]string, len(steps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)

	for i, step := range steps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logger := ctxlog.FromContext(gctx).With("rule", step.Rule)
			logger.Debug("Rendering step.", "target", string(target))

			text, err := render.Render(target, step.Object, opts)
			if err != nil {
				return fmt.Errorf("step %q (%s): %w", step.Rule, step.FSInformation.FilePath, err)
			}
			out[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// write prints each rendered step. With several steps every block gets a
// "# rule" header, which is a comment in all supported languages.
func write(w io.Writer, steps []*config.Step, rendered []string) error {
	for i, text := range rendered {
		if len(steps) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "# rule %s\n", steps[i].Rule); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
