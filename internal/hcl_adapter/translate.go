// This file translates the HCL step schema into step objects.

package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/stepliteral/internal/config"
	"github.com/specialistvlad/stepliteral/internal/ctxlog"
	"github.com/specialistvlad/stepliteral/internal/stepobject"
	"github.com/specialistvlad/stepliteral/internal/value"
	"github.com/specialistvlad/stepliteral/internal/yamlconfig"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateStep converts a decoded step block into the agnostic model.
func (l *Loader) translateStep(ctx context.Context, s *Step, filePath string) (*config.Step, error) {
	ctx, logger := ctxlog.With(ctx, "rule", s.Rule)
	logger.Debug("Translating HCL step to step object.")
	evalCtx := newEvalContext(s.Rule)

	parts := stepobject.Parts{Rule: s.Rule, Threads: 1}
	namedLists := []struct {
		name  string
		expr  hcl.Expression
		dst   **value.NamedList
		paths bool
	}{
		{stepobject.AttrInput, s.Input, &parts.Input, true},
		{stepobject.AttrOutput, s.Output, &parts.Output, true},
		{stepobject.AttrParams, s.Params, &parts.Params, false},
		{stepobject.AttrWildcards, s.Wildcards, &parts.Wildcards, false},
		{stepobject.AttrResources, s.Resources, &parts.Resources, false},
		{stepobject.AttrLog, s.Log, &parts.Log, true},
	}
	for _, nl := range namedLists {
		if !isExprDefined(ctx, nl.expr, nl.name) {
			continue
		}
		list, err := namedListFromExpr(nl.expr, evalCtx, nl.paths)
		if err != nil {
			return nil, fmt.Errorf("step '%s', attribute '%s': %w", s.Rule, nl.name, err)
		}
		*nl.dst = list
	}

	if isExprDefined(ctx, s.Threads, stepobject.AttrThreads) {
		threads, err := evalInt(s.Threads, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("step '%s', attribute 'threads': %w", s.Rule, err)
		}
		if threads < 1 {
			return nil, fmt.Errorf("step '%s', attribute 'threads': must be at least 1, got %d", s.Rule, threads)
		}
		parts.Threads = threads
	}

	if isExprDefined(ctx, s.BenchIteration, stepobject.AttrBenchIteration) {
		bench, err := evalInt(s.BenchIteration, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("step '%s', attribute 'bench_iteration': %w", s.Rule, err)
		}
		parts.BenchIteration = &bench
	}

	if isExprDefined(ctx, s.ScriptDir, stepobject.AttrScriptDir) {
		dir, err := evalString(s.ScriptDir, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("step '%s', attribute 'scriptdir': %w", s.Rule, err)
		}
		parts.ScriptDir = dir
	}

	cfg, err := l.stepConfig(ctx, s, evalCtx, filePath)
	if err != nil {
		return nil, fmt.Errorf("step '%s': %w", s.Rule, err)
	}
	parts.Config = cfg

	return &config.Step{
		Rule:          s.Rule,
		Object:        stepobject.New(parts),
		FSInformation: config.NewFSInfo(filePath),
	}, nil
}

// stepConfig loads the configfile, if any, and applies inline config keys
// on top of it.
func (l *Loader) stepConfig(ctx context.Context, s *Step, evalCtx *hcl.EvalContext, filePath string) (*value.Mapping, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := value.NewMapping()

	if isExprDefined(ctx, s.ConfigFile, "configfile") {
		name, err := evalString(s.ConfigFile, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("attribute 'configfile': %w", err)
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(filepath.Dir(filePath), name)
		}
		loaded, err := yamlconfig.LoadFile(name)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded config file.", "path", name, "keys", loaded.Len())
		cfg.Merge(loaded)
	}

	if isExprDefined(ctx, s.Config, stepobject.AttrConfig) {
		v, err := exprToValue(s.Config, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("attribute 'config': %w", err)
		}
		switch v.Kind() {
		case value.KindMapping:
			cfg.Merge(v.AsMapping())
		case value.KindNull:
		default:
			return nil, fmt.Errorf("attribute 'config': expected an object, got %s", v.Kind())
		}
	}
	return cfg, nil
}

// namedListFromExpr reads a named-list attribute. An object makes every
// entry a named position. In a tuple, a single-key object element is a named
// position and any other element a plain one. Anything else is a single
// plain position. With paths set, string entries are marked as paths.
func namedListFromExpr(expr hcl.Expression, evalCtx *hcl.EvalContext, paths bool) (*value.NamedList, error) {
	v, err := exprToValue(expr, evalCtx)
	if err != nil {
		return nil, err
	}
	nl := value.NewNamedList()
	wrap := func(v value.Value) value.Value {
		if paths {
			return asPaths(v)
		}
		return v
	}

	switch v.Kind() {
	case value.KindNull:
	case value.KindMapping:
		for name, item := range v.AsMapping().All() {
			if err := nl.AppendNamed(name, wrap(item)); err != nil {
				return nil, err
			}
		}
	case value.KindSequence:
		for _, elem := range v.AsSeq() {
			if m := elem.AsMapping(); elem.Kind() == value.KindMapping && m.Len() == 1 {
				for name, item := range m.All() {
					if err := nl.AppendNamed(name, wrap(item)); err != nil {
						return nil, err
					}
				}
				continue
			}
			nl.Append(wrap(elem))
		}
	default:
		nl.Append(wrap(v))
	}
	return nl, nil
}

// asPaths marks strings, including those inside sequences, as paths.
func asPaths(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindString:
		return value.Path(v.AsString())
	case value.KindSequence:
		out := make([]value.Value, len(v.AsSeq()))
		for i, e := range v.AsSeq() {
			out[i] = asPaths(e)
		}
		return value.Seq(out...)
	}
	return v
}

func evalInt(expr hcl.Expression, evalCtx *hcl.EvalContext) (int, error) {
	v, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	v, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, err
	}
	if v.IsNull() {
		return 0, fmt.Errorf("must not be null")
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	v, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	v, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", err
	}
	if v.IsNull() {
		return "", fmt.Errorf("must not be null")
	}
	return v.AsString(), nil
}
