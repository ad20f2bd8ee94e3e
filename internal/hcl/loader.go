package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/dotlabel/internal/config"
	"github.com/vk/dotlabel/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL dialect loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the dialect file at path and overlays its first dialect block
// on the default dialect. A file without dialect blocks yields the defaults.
func (l *Loader) Load(ctx context.Context, path string) (*config.Dialect, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL dialect loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	dialect := config.DefaultDialect()
	if len(root.Dialects) == 0 {
		logger.Debug("No dialect block found, using defaults.", "path", path)
		return dialect, nil
	}
	if len(root.Dialects) > 1 {
		logger.Warn("Multiple dialect blocks found, only the first is used.", "path", path, "count", len(root.Dialects))
	}

	if err := l.translateDialect(ctx, root.Dialects[0], dialect); err != nil {
		return nil, fmt.Errorf("dialect %q in %s: %w", root.Dialects[0].Name, path, err)
	}
	if err := dialect.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL dialect loaded.", "dialect", dialect.Name, "header_lines", dialect.HeaderLines, "edge_predicate", dialect.EdgePredicate)
	return dialect, nil
}
