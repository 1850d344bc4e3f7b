package text

import "golang.org/x/text/unicode/bidi"

// segment is a contiguous run of text with a single direction. Start and
// End are rune indices into the paragraph.
type segment struct {
	Start     int
	End       int
	Direction Direction
}

// segmentBidi splits a paragraph into directional runs using the Unicode
// bidirectional algorithm. The base direction resolves neutral paragraphs.
func segmentBidi(para string, base Direction) []segment {
	runes := []rune(para)
	if len(runes) == 0 {
		return nil
	}

	levels := computeBidiLevels(para, base, len(runes))

	segments := make([]segment, 0, 2)
	start := 0
	current := levels[0]
	for i := 1; i < len(runes); i++ {
		if levels[i] == current {
			continue
		}
		segments = append(segments, makeSegment(start, i, current))
		start = i
		current = levels[i]
	}
	segments = append(segments, makeSegment(start, len(runes), current))
	return segments
}

// computeBidiLevels returns one embedding level per rune.
func computeBidiLevels(para string, base Direction, runeCount int) []int {
	levels := make([]int, runeCount)

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	_, _ = p.SetString(para, bidi.DefaultDirection(defaultDir))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < len(levels); j++ {
			levels[j] = level
		}
	}

	return levels
}

func makeSegment(start, end, level int) segment {
	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}
	return segment{Start: start, End: end, Direction: dir}
}
