package record

import "github.com/easelui/easel/graphics"

// TranslateOps returns the ops shifted by v. It is used when a sub-frame
// recorded at the origin is merged back at a region offset. The input
// slice is not modified.
func TranslateOps(ops []Op, v graphics.Vector) []Op {
	if v.IsZero() || len(ops) == 0 {
		return ops
	}
	out := make([]Op, len(ops))
	for i, op := range ops {
		out[i] = translateOp(op, v)
	}
	return out
}

func translateOp(op Op, v graphics.Vector) Op {
	move := graphics.Translate(v.X, v.Y)
	switch o := op.(type) {
	case Rect:
		o.Bounds = o.Bounds.Add(v)
		o.Style = TranslateStyle(o.Style, v)
		return o
	case Fill:
		o.Transform = move.Multiply(o.Transform)
		return o
	case Stroke:
		o.Transform = move.Multiply(o.Transform)
		return o
	case Text:
		o.Position = o.Position.Add(v)
		o.Clip = o.Clip.Add(v)
		return o
	case Paragraph:
		o.Position = o.Position.Add(v)
		o.Clip = o.Clip.Add(v)
		return o
	case Editor:
		o.Position = o.Position.Add(v)
		o.Clip = o.Clip.Add(v)
		return o
	case Quad:
		o.Quad.Bounds = o.Quad.Bounds.Add(v)
		o.Background = TranslateBackground(o.Background, v)
		return o
	case Image:
		o.Bounds = o.Bounds.Add(v)
		return o
	case Svg:
		o.Bounds = o.Bounds.Add(v)
		return o
	case Mesh:
		// Meshes carry no position of their own; reanchor via transform.
		return Transform{Transformation: move, Ops: []Op{o}}
	case Custom:
		o.Bounds = o.Bounds.Add(v)
		return o
	case Clip:
		o.Bounds = o.Bounds.Add(v)
		o.Ops = TranslateOps(o.Ops, v)
		return o
	case Layer:
		o.Bounds = o.Bounds.Add(v)
		o.Ops = TranslateOps(o.Ops, v)
		return o
	case Transform:
		o.Transformation = move.Multiply(o.Transformation)
		return o
	case Group:
		o.Ops = TranslateOps(o.Ops, v)
		o.Texts = TranslateTexts(o.Texts, v)
		return o
	default:
		return op
	}
}

// TranslateStyle shifts the geometry a fill style carries, if any.
// Gradient endpoints live in the same coordinate space as the op that
// uses them, so baked translations must move them along.
func TranslateStyle(s graphics.Style, v graphics.Vector) graphics.Style {
	switch g := s.(type) {
	case graphics.LinearGradient:
		g.Start = g.Start.Add(v)
		g.End = g.End.Add(v)
		return g
	case graphics.RadialGradient:
		g.Center = g.Center.Add(v)
		return g
	default:
		return s
	}
}

// TranslateBackground shifts the geometry a background carries, if any.
func TranslateBackground(b graphics.Background, v graphics.Vector) graphics.Background {
	switch g := b.(type) {
	case graphics.LinearGradient:
		g.Start = g.Start.Add(v)
		g.End = g.End.Add(v)
		return g
	case graphics.RadialGradient:
		g.Center = g.Center.Add(v)
		return g
	default:
		return b
	}
}

// TranslateTexts returns the text ops shifted by v. The input slice is
// not modified.
func TranslateTexts(texts []Text, v graphics.Vector) []Text {
	if v.IsZero() || len(texts) == 0 {
		return texts
	}
	out := make([]Text, len(texts))
	for i, t := range texts {
		t.Position = t.Position.Add(v)
		t.Clip = t.Clip.Add(v)
		out[i] = t
	}
	return out
}
