package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/stepliteral/internal/config"
	"github.com/specialistvlad/stepliteral/internal/ctxlog"
	"github.com/specialistvlad/stepliteral/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL step loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and returns their steps in
// file order. Rule names must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	seen := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, s := range root.Steps {
			if prev, dup := seen[s.Rule]; dup {
				return nil, nil, fmt.Errorf("duplicate step %q in %s, first defined in %s", s.Rule, file, prev)
			}
			seen[s.Rule] = file

			step, err := l.translateStep(ctx, s, file)
			if err != nil {
				return nil, nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Steps = append(model.Steps, step)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "steps", len(model.Steps))
	return model, NewConverter(), nil
}
