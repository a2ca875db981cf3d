package hcl_adapter

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/stepliteral/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// exprToValue reads an expression into a Value. Tuple and object
// constructors are walked item by item to keep source order; anything else
// is evaluated.
func exprToValue(expr hcl.Expression, evalCtx *hcl.EvalContext) (value.Value, error) {
	switch e := expr.(type) {
	case *hclsyntax.TupleConsExpr:
		elems := make([]value.Value, 0, len(e.Exprs))
		for i, sub := range e.Exprs {
			v, err := exprToValue(sub, evalCtx)
			if err != nil {
				return value.Value{}, fmt.Errorf("in element %d: %w", i, err)
			}
			elems = append(elems, v)
		}
		return value.Seq(elems...), nil

	case *hclsyntax.ObjectConsExpr:
		m := value.NewMapping()
		for _, item := range e.Items {
			key, err := objectKey(item.KeyExpr, evalCtx)
			if err != nil {
				return value.Value{}, err
			}
			v, err := exprToValue(item.ValueExpr, evalCtx)
			if err != nil {
				return value.Value{}, fmt.Errorf("in attribute '%s': %w", key, err)
			}
			m.Set(key, v)
		}
		return value.Map(m), nil
	}

	v, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return value.Value{}, diags
	}
	return ctyToValue(v)
}

// objectKey evaluates an object key. Bare identifiers are taken literally,
// as HCL itself does.
func objectKey(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	k, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	k, err := convert.Convert(k, cty.String)
	if err != nil {
		return "", fmt.Errorf("invalid object key: %w", err)
	}
	if k.IsNull() || !k.IsKnown() {
		return "", fmt.Errorf("object key must be a known, non-null string")
	}
	return k.AsString(), nil
}

// ctyToValue recursively converts a cty.Value. Whole numbers that fit an
// int64 become Int, other numbers Float. Map and object keys come out in
// cty's lexical order.
func ctyToValue(v cty.Value) (value.Value, error) {
	v, _ = v.Unmark()
	if !v.IsKnown() {
		return value.Value{}, fmt.Errorf("value of type %s is not known", v.Type().FriendlyName())
	}
	if v.IsNull() {
		return value.Null(), nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return value.String(v.AsString()), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return value.Int(i), nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return value.Value{}, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return value.Float(f), nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return value.Value{}, fmt.Errorf("internal error: failed to convert cty.Bool to bool: %w", err)
		}
		return value.Bool(b), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		elems := make([]value.Value, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			conv, err := ctyToValue(ev)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, conv)
		}
		return value.Seq(elems...), nil

	case ty.IsObjectType() || ty.IsMapType():
		m := value.NewMapping()
		it := v.ElementIterator()
		for it.Next() {
			k, ev := it.Element()
			conv, err := ctyToValue(ev)
			if err != nil {
				return value.Value{}, fmt.Errorf("in attribute '%s': %w", k.AsString(), err)
			}
			m.Set(k.AsString(), conv)
		}
		return value.Map(m), nil
	}
	return value.Foreign(v), nil
}

// Converter is the HCL-specific implementation of the config.Converter
// interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Coerce implements config.Converter; see CoerceCty.
func (c *Converter) Coerce(x any) (value.Value, bool) {
	return CoerceCty(x)
}

// CoerceCty is a value.Coercer for cty.Value payloads, letting encoders
// accept values that were carried through as Foreign.
func CoerceCty(x any) (value.Value, bool) {
	v, ok := x.(cty.Value)
	if !ok {
		return value.Value{}, false
	}
	out, err := ctyToValue(v)
	if err != nil || out.Kind() == value.KindForeign {
		return value.Value{}, false
	}
	return out, true
}
