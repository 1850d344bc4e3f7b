// Package text provides text shaping and layout for easel.
//
// The pipeline follows a separation of concerns:
//
//   - FontSystem: Heavyweight, shared font database; resolves Font values
//     to concrete faces and owns the HarfBuzz shaper pool
//   - Paragraph: A shaped and line-wrapped block of text, ready to draw
//     and to hit-test
//   - Editor: An editable text buffer layered on top of Paragraph
//
// Shaping is backed by go-text/typesetting (HarfBuzz port), with
// bidirectional segmentation from golang.org/x/text. A FontSystem ships
// with embedded defaults (Go Regular for sans-serif, Latin Modern for
// serif and monospace) so text works without any system font lookup.
//
// # Example usage
//
//	fs := text.NewFontSystem()
//	p := text.NewParagraph(fs, text.Text{
//	    Content: "Hello, world!",
//	    Size:    16,
//	    Bounds:  graphics.Sz(200, 100),
//	})
//	size := p.MinBounds()
package text
