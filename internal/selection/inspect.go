package selection

import (
	"fmt"

	"github.com/mj1618/selection-lens/internal/ax"
	"github.com/mj1618/selection-lens/internal/model"
)

// maxArrayItems caps how many array items Describe expands.
const maxArrayItems = 20

// Inspect describes the focused element: its pid, role and the attribute
// names it supports. When attribute is not empty its value is read and
// summarized as well.
func (c *Controller) Inspect(attribute string) (model.Inspection, error) {
	ins := model.Inspection{TS: c.now().Unix()}

	fellBack, err := c.withFocused(func(el *ax.Element) error {
		if pid, err := el.PID(); err == nil {
			ins.PID = pid
		}
		if role, err := el.StringAttribute(ax.AttributeRole); err == nil {
			ins.Role = role
		}

		names, err := el.AttributeNames()
		if err != nil {
			return fmt.Errorf("attribute names: %w", err)
		}
		ins.Attributes = names
		if names, err := el.ParameterizedAttributeNames(); err == nil {
			ins.Parameterized = names
		} else {
			c.logger.Debug("parameterized attribute names unavailable", "err", err)
		}

		if attribute != "" {
			av := &model.AttributeValue{Name: attribute}
			v, err := el.AttributeValue(attribute)
			if err != nil {
				av.Error = err.Error()
			} else {
				av.Kind = v.Kind().String()
				av.Value = Describe(v)
				v.Release()
			}
			ins.Attribute = av
		}
		return nil
	})
	ins.FellBack = fellBack
	return ins, err
}

// Describe summarizes v as plain data suitable for YAML or JSON output.
// Elements are described by pid and role; arrays are expanded up to a fixed
// number of items. v keeps its reference.
func Describe(v ax.Value) any {
	switch v.Kind() {
	case ax.KindString:
		s, _ := v.AsString()
		return s
	case ax.KindNumber:
		n, _ := v.AsNumber()
		return n
	case ax.KindBoolean:
		b, _ := v.AsBool()
		return b
	case ax.KindBox:
		box, _ := v.AsBox()
		return describeBox(box)
	case ax.KindElement:
		el, _ := v.AsElement()
		desc := map[string]any{}
		if pid, err := el.PID(); err == nil {
			desc["pid"] = pid
		}
		if role, err := el.StringAttribute(ax.AttributeRole); err == nil {
			desc["role"] = role
		}
		return desc
	case ax.KindArray:
		items, _ := v.AsArray()
		defer ax.ReleaseAll(items)
		out := make([]any, 0, min(len(items), maxArrayItems+1))
		for i, item := range items {
			if i == maxArrayItems {
				out = append(out, fmt.Sprintf("... %d more", len(items)-maxArrayItems))
				break
			}
			out = append(out, Describe(item))
		}
		return out
	default:
		return "<" + v.Kind().String() + ">"
	}
}

func describeBox(box *ax.Box) any {
	switch box.Type() {
	case ax.ValueTypePoint:
		if p, ok := ax.Get[ax.Point](box); ok {
			return map[string]float64{"x": p.X, "y": p.Y}
		}
	case ax.ValueTypeSize:
		if s, ok := ax.Get[ax.Size](box); ok {
			return map[string]float64{"width": s.Width, "height": s.Height}
		}
	case ax.ValueTypeRect:
		if r, ok := ax.Get[ax.Rect](box); ok {
			return map[string]float64{
				"x": r.Origin.X, "y": r.Origin.Y,
				"width": r.Size.Width, "height": r.Size.Height,
			}
		}
	case ax.ValueTypeRange:
		if r, ok := ax.Get[ax.Range](box); ok {
			return map[string]int{"location": r.Location, "length": r.Length}
		}
	case ax.ValueTypeError:
		if e, ok := ax.Get[ax.Error](box); ok {
			return e.Error()
		}
	}
	return "<" + box.Type().String() + ">"
}
