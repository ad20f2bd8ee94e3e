// This file translates decoded HCL blocks into the format-agnostic dialect
// model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/dotlabel/internal/config"
	"github.com/vk/dotlabel/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateDialect overlays the attributes set in b onto d.
func (l *Loader) translateDialect(ctx context.Context, b *dialectBlock, d *config.Dialect) error {
	d.Name = b.Name
	if b.HeaderLines != nil {
		d.HeaderLines = *b.HeaderLines
	}
	if b.Marker != nil {
		d.Marker = *b.Marker
	}
	if b.EdgePredicate != nil {
		d.EdgePredicate = *b.EdgePredicate
	}
	if b.LabelSeparator != nil {
		d.LabelSeparator = *b.LabelSeparator
	}

	defaults, err := l.decodeStringMap(ctx, b.EdgeDefaults)
	if err != nil {
		return fmt.Errorf("edge_defaults: %w", err)
	}
	for k, v := range defaults {
		d.EdgeDefaults[k] = v
	}
	return nil
}

// decodeStringMap evaluates expr and converts the result into a string map.
// A missing attribute evaluates to null and yields an empty map.
func (l *Loader) decodeStringMap(ctx context.Context, expr hcl.Expression) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	target := cty.Map(cty.String)
	converted, err := convert.Convert(val, target)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), target.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var out map[string]string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, err
	}
	return out, nil
}
