package text

import (
	"unicode"

	"github.com/easelui/easel/graphics"
)

// Motion identifies a cursor movement.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionWordLeft
	MotionWordRight
	MotionDocumentStart
	MotionDocumentEnd
)

// Editor is an editable text buffer with cursor and selection state. The
// shaped view is rebuilt lazily after edits; rendering and hit testing go
// through Paragraph.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	fs     *FontSystem
	text   Text
	buffer []rune

	// cursor and anchor are rune indices into buffer. They are equal
	// when there is no selection.
	cursor int
	anchor int

	paragraph *Paragraph
	dirty     bool
}

// NewEditor creates an editor holding t.Content as its initial buffer.
func NewEditor(fs *FontSystem, t Text) *Editor {
	e := &Editor{
		fs:     fs,
		text:   t,
		buffer: []rune(normalizeNewlines(t.Content)),
		dirty:  true,
	}
	e.cursor = len(e.buffer)
	e.anchor = e.cursor
	return e
}

// Contents returns the current buffer as a string.
func (e *Editor) Contents() string {
	return string(e.buffer)
}

// SetContents replaces the buffer and moves the cursor to its end.
func (e *Editor) SetContents(s string) {
	e.buffer = []rune(normalizeNewlines(s))
	e.cursor = len(e.buffer)
	e.anchor = e.cursor
	e.dirty = true
}

// Paragraph returns the shaped view of the current buffer.
func (e *Editor) Paragraph() *Paragraph {
	if e.dirty || e.paragraph == nil {
		t := e.text
		t.Content = string(e.buffer)
		e.paragraph = NewParagraph(e.fs, t)
		e.dirty = false
	}
	return e.paragraph
}

// MinBounds returns the smallest size that fits the shaped buffer.
func (e *Editor) MinBounds() graphics.Size {
	return e.Paragraph().MinBounds()
}

// Resize updates the layout bounds of the editor.
func (e *Editor) Resize(bounds graphics.Size) {
	e.text.Bounds = bounds
	e.dirty = true
}

// Cursor returns the rune index of the caret.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Selection returns the selected rune range. ok is false when the
// selection is empty.
func (e *Editor) Selection() (start, end int, ok bool) {
	if e.cursor == e.anchor {
		return e.cursor, e.cursor, false
	}
	if e.anchor < e.cursor {
		return e.anchor, e.cursor, true
	}
	return e.cursor, e.anchor, true
}

// SelectedText returns the selected text, or an empty string.
func (e *Editor) SelectedText() string {
	start, end, ok := e.Selection()
	if !ok {
		return ""
	}
	return string(e.buffer[start:end])
}

// CursorPosition returns the caret position in paragraph coordinates,
// at the top of the caret line.
func (e *Editor) CursorPosition() graphics.Point {
	li := e.lineFor(e.cursor)
	pt, _ := e.Paragraph().GraphemePosition(li, e.cursor)
	return pt
}

// LineCount returns the number of hard lines in the buffer.
func (e *Editor) LineCount() int {
	n := 1
	for _, r := range e.buffer {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Insert inserts a rune at the cursor, replacing any selection.
func (e *Editor) Insert(r rune) {
	e.deleteSelection()
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
	e.anchor = e.cursor
	e.dirty = true
}

// InsertString inserts a string at the cursor, replacing any selection.
func (e *Editor) InsertString(s string) {
	e.deleteSelection()
	rs := []rune(normalizeNewlines(s))
	e.buffer = append(e.buffer[:e.cursor], append(rs, e.buffer[e.cursor:]...)...)
	e.cursor += len(rs)
	e.anchor = e.cursor
	e.dirty = true
}

// Enter inserts a hard line break.
func (e *Editor) Enter() {
	e.Insert('\n')
}

// Backspace removes the selection, or the rune before the cursor.
func (e *Editor) Backspace() {
	if e.deleteSelection() {
		return
	}
	if e.cursor == 0 {
		return
	}
	e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
	e.cursor--
	e.anchor = e.cursor
	e.dirty = true
}

// Delete removes the selection, or the rune after the cursor.
func (e *Editor) Delete() {
	if e.deleteSelection() {
		return
	}
	if e.cursor >= len(e.buffer) {
		return
	}
	e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
	e.dirty = true
}

// deleteSelection removes the selected range and reports whether a
// selection existed.
func (e *Editor) deleteSelection() bool {
	start, end, ok := e.Selection()
	if !ok {
		return false
	}
	e.buffer = append(e.buffer[:start], e.buffer[end:]...)
	e.cursor = start
	e.anchor = start
	e.dirty = true
	return true
}

// Move collapses any selection and moves the caret.
func (e *Editor) Move(m Motion) {
	if start, end, ok := e.Selection(); ok {
		// Horizontal motions collapse to the selection edge first.
		switch m {
		case MotionLeft:
			e.cursor = start
			e.anchor = start
			return
		case MotionRight:
			e.cursor = end
			e.anchor = end
			return
		}
	}
	e.cursor = e.target(m)
	e.anchor = e.cursor
}

// Select moves the caret, extending the selection from its anchor.
func (e *Editor) Select(m Motion) {
	e.cursor = e.target(m)
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() {
	e.anchor = 0
	e.cursor = len(e.buffer)
}

// SelectWord selects the word under the caret.
func (e *Editor) SelectWord() {
	e.anchor = e.wordStart(e.cursor)
	e.cursor = e.wordEnd(e.cursor)
}

// SelectLine selects the visual line under the caret.
func (e *Editor) SelectLine() {
	lines := e.Paragraph().Lines()
	if len(lines) == 0 {
		return
	}
	ln := lines[e.lineFor(e.cursor)]
	e.anchor = ln.Start
	e.cursor = ln.End
}

// Click places the caret at the given point in paragraph coordinates.
func (e *Editor) Click(pt graphics.Point) {
	if idx, ok := e.Paragraph().HitTest(pt); ok {
		e.cursor = idx
		e.anchor = idx
	}
}

// Drag extends the selection to the given point.
func (e *Editor) Drag(pt graphics.Point) {
	if idx, ok := e.Paragraph().HitTest(pt); ok {
		e.cursor = idx
	}
}

// target computes the caret position a motion leads to.
func (e *Editor) target(m Motion) int {
	switch m {
	case MotionLeft:
		return max(e.cursor-1, 0)
	case MotionRight:
		return min(e.cursor+1, len(e.buffer))
	case MotionUp:
		return e.verticalTarget(-1)
	case MotionDown:
		return e.verticalTarget(+1)
	case MotionHome:
		lines := e.Paragraph().Lines()
		if len(lines) == 0 {
			return 0
		}
		return lines[e.lineFor(e.cursor)].Start
	case MotionEnd:
		lines := e.Paragraph().Lines()
		if len(lines) == 0 {
			return 0
		}
		return lines[e.lineFor(e.cursor)].End
	case MotionWordLeft:
		return e.wordStart(max(e.cursor-1, 0))
	case MotionWordRight:
		return e.wordEnd(min(e.cursor+1, len(e.buffer)))
	case MotionDocumentStart:
		return 0
	case MotionDocumentEnd:
		return len(e.buffer)
	default:
		return e.cursor
	}
}

// verticalTarget moves the caret one line up or down, keeping the
// horizontal position.
func (e *Editor) verticalTarget(delta int) int {
	p := e.Paragraph()
	lines := p.Lines()
	if len(lines) == 0 {
		return e.cursor
	}

	li := e.lineFor(e.cursor)
	target := li + delta
	if target < 0 || target >= len(lines) {
		return e.cursor
	}

	pos, _ := p.GraphemePosition(li, e.cursor)
	probe := graphics.Pt(pos.X, (float64(target)+0.5)*p.LineHeight())
	if idx, ok := p.HitTest(probe); ok {
		return idx
	}
	return e.cursor
}

// lineFor returns the index of the visual line containing the caret.
func (e *Editor) lineFor(c int) int {
	lines := e.Paragraph().Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		if c >= lines[i].Start {
			return i
		}
	}
	return 0
}

// wordStart returns the start of the word at or before c.
func (e *Editor) wordStart(c int) int {
	for c > 0 && unicode.IsSpace(e.buffer[c-1]) {
		c--
	}
	for c > 0 && !unicode.IsSpace(e.buffer[c-1]) {
		c--
	}
	return c
}

// wordEnd returns the end of the word at or after c.
func (e *Editor) wordEnd(c int) int {
	for c < len(e.buffer) && unicode.IsSpace(e.buffer[c]) {
		c++
	}
	for c < len(e.buffer) && !unicode.IsSpace(e.buffer[c]) {
		c++
	}
	return c
}
