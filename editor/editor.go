//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"strings"

	gott "github.com/motelab/mote/types"
)

// The Editor manages the editing of text in a Document. It owns the
// cursor and the single yank register; it performs no I/O and emits no
// actions of its own.
type Editor struct {
	doc      *Document
	cursor   Cursor
	register string // most recently yanked or deleted text
}

func NewEditor() *Editor {
	return &Editor{doc: NewDocument("")}
}

// Load replaces the document. The cursor resets to offset 0; the register
// is deliberately left alone.
func (e *Editor) Load(text string) {
	e.doc.Load(text)
	e.cursor = Cursor{}
	e.cursor.Sync(e.doc)
}

func (e *Editor) Contents() string {
	return e.doc.String()
}

func (e *Editor) Document() *Document {
	return e.doc
}

func (e *Editor) CursorOffset() int {
	return e.cursor.Position
}

// SetCursorOffset places the cursor directly, clamping and snapping the
// offset to a rune boundary. Hosts use it when opening a document at a
// chosen position.
func (e *Editor) SetCursorOffset(offset int) {
	e.cursor.Position = e.doc.Clamp(offset)
	e.touch()
}

func (e *Editor) Position() (line, col int) {
	return e.cursor.Line, e.cursor.Col
}

func (e *Editor) Register() string {
	return e.register
}

// touch re-derives line/column and refreshes the sticky column. Every
// horizontal motion and every edit ends here; vertical motion does not.
func (e *Editor) touch() {
	e.cursor.Sync(e.doc)
	e.cursor.Desired = e.cursor.Col
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case gott.MoveLeft:
		if e.cursor.Position > 0 {
			e.cursor.Position = e.doc.Prev(e.cursor.Position)
			e.touch()
		}
	case gott.MoveRight:
		if e.cursor.Position < e.doc.Length() {
			e.cursor.Position = e.doc.Next(e.cursor.Position)
			e.touch()
		}
	case gott.MoveUp:
		e.moveVertical(gott.MoveUp)
	case gott.MoveDown:
		e.moveVertical(gott.MoveDown)
	}
}

// moveVertical aims for the sticky column, not the column the cursor
// happens to be in after crossing a short line. Desired survives the move
// so a run of vertical motions keeps the original horizontal intent.
func (e *Editor) moveVertical(direction int) {
	target := e.cursor.Desired
	if e.cursor.Col > target {
		target = e.cursor.Col
	}
	var pos int
	var ok bool
	if direction == gott.MoveUp {
		pos, ok = PositionAbove(e.doc, e.cursor.Position, target)
	} else {
		pos, ok = PositionBelow(e.doc, e.cursor.Position, target)
	}
	if !ok {
		return
	}
	e.cursor.Position = pos
	e.cursor.Sync(e.doc)
}

func (e *Editor) MoveToNextWord() {
	if pos := NextWordStart(e.doc, e.cursor.Position); pos > e.cursor.Position {
		e.cursor.Position = pos
		e.touch()
	}
}

func (e *Editor) MoveToPreviousWord() {
	if pos := PrevWordStart(e.doc, e.cursor.Position); pos < e.cursor.Position {
		e.cursor.Position = pos
		e.touch()
	}
}

func (e *Editor) MoveToStartOfLine() {
	e.cursor.Position = e.doc.LineStart(e.cursor.Position)
	e.touch()
}

func (e *Editor) MoveToEndOfLine() {
	e.cursor.Position = e.doc.LineEnd(e.cursor.Position)
	e.touch()
}

// AdvanceCursor steps past the rune at the cursor; used entering insert
// mode with 'a'.
func (e *Editor) AdvanceCursor() {
	if e.cursor.Position < e.doc.Length() {
		e.cursor.Position = e.doc.Next(e.cursor.Position)
		e.touch()
	}
}

// RetreatCursor steps back one rune; used leaving insert mode, where the
// normal-mode cursor sits on a character rather than between characters.
func (e *Editor) RetreatCursor() {
	if e.cursor.Position > 0 && e.doc.Length() > 0 {
		e.cursor.Position = e.doc.Prev(e.cursor.Position)
		e.touch()
	}
}

func (e *Editor) InsertText(text string) {
	e.doc.Insert(e.cursor.Position, text)
	e.cursor.Position += len(text)
	e.touch()
}

func (e *Editor) BackspaceChar() {
	if e.cursor.Position == 0 {
		return
	}
	prev := e.doc.Prev(e.cursor.Position)
	e.doc.Delete(prev, e.cursor.Position)
	e.cursor.Position = prev
	e.touch()
}

func (e *Editor) DeleteCharForward() {
	if e.cursor.Position < e.doc.Length() {
		e.doc.Delete(e.cursor.Position, e.doc.Next(e.cursor.Position))
		e.touch()
	}
}

func (e *Editor) OpenLineBelow() {
	lineEnd := e.doc.LineEnd(e.cursor.Position)
	e.doc.Insert(lineEnd, "\n")
	e.cursor.Position = lineEnd + 1
	e.touch()
}

func (e *Editor) OpenLineAbove() {
	lineStart := e.doc.LineStart(e.cursor.Position)
	e.doc.Insert(lineStart, "\n")
	e.cursor.Position = lineStart
	e.touch()
}

// DeleteCharAtCursor implements 'x': the rune under the cursor goes away,
// the cursor offset stays put (clamped), and the register is untouched.
func (e *Editor) DeleteCharAtCursor() {
	if e.cursor.Position >= e.doc.Length() {
		return
	}
	e.doc.Delete(e.cursor.Position, e.doc.Next(e.cursor.Position))
	e.cursor.Position = e.doc.Clamp(e.cursor.Position)
	e.touch()
}

// lineSpan returns the current line with and without its terminator.
func (e *Editor) lineSpan() (start, end, endIncl int) {
	start = e.doc.LineStart(e.cursor.Position)
	end = e.doc.LineEnd(e.cursor.Position)
	endIncl = end
	if end < e.doc.Length() {
		endIncl = end + 1
	}
	return
}

// DeleteLine implements 'dd': the line goes to the register including its
// terminator, the following line joins up, and the cursor lands at the
// start of the line now occupying that offset.
func (e *Editor) DeleteLine() {
	start, end, endIncl := e.lineSpan()
	e.register = e.doc.Slice(start, endIncl)
	delStart := start
	if end == e.doc.Length() && start > 0 {
		// unterminated last line: take the preceding terminator instead
		delStart = e.doc.Prev(start)
	}
	e.doc.Delete(delStart, endIncl)
	e.cursor.Position = e.doc.LineStart(e.doc.Clamp(start))
	e.touch()
}

// YankLine implements 'yy': the line and its terminator go to the
// register; nothing moves, nothing mutates.
func (e *Editor) YankLine() {
	start, _, endIncl := e.lineSpan()
	e.register = e.doc.Slice(start, endIncl)
}

// ChangeLine implements 'cc': the line content goes to the register and
// is removed, but the line slot survives and the cursor parks at its
// start, ready for insert mode.
func (e *Editor) ChangeLine() {
	start, end, _ := e.lineSpan()
	e.register = e.doc.Delete(start, end)
	e.cursor.Position = start
	e.touch()
}

// DeleteToNextWord implements 'dw'/'cw': from the cursor to the start of
// the next word. At the end of the document the span is empty and nothing
// happens, including to the register.
func (e *Editor) DeleteToNextWord() {
	end := NextWordStart(e.doc, e.cursor.Position)
	if end <= e.cursor.Position {
		return
	}
	e.register = e.doc.Delete(e.cursor.Position, end)
	e.touch()
}

func (e *Editor) YankToNextWord() {
	end := NextWordStart(e.doc, e.cursor.Position)
	if end <= e.cursor.Position {
		return
	}
	e.register = e.doc.Slice(e.cursor.Position, end)
}

// DeleteInnerWord implements 'diw'/'ciw': the word-character run under
// the cursor, or the single non-word rune the cursor sits on.
func (e *Editor) DeleteInnerWord() {
	start, end := InnerWord(e.doc, e.cursor.Position)
	if end <= start {
		return
	}
	e.register = e.doc.Delete(start, end)
	e.cursor.Position = start
	e.touch()
}

func (e *Editor) YankInnerWord() {
	start, end := InnerWord(e.doc, e.cursor.Position)
	if end <= start {
		return
	}
	e.register = e.doc.Slice(start, end)
}

// Paste inserts the register. Content with a line terminator pastes
// line-wise above or below the current line; anything else pastes
// character-wise at or just past the cursor. The cursor lands just past
// the inserted text.
func (e *Editor) Paste(before bool) {
	if e.register == "" {
		return
	}
	var at int
	if strings.Contains(e.register, "\n") {
		if before {
			at = e.doc.LineStart(e.cursor.Position)
		} else {
			at = e.doc.LineEnd(e.cursor.Position)
			if at < e.doc.Length() {
				at++ // just past the terminator
			}
		}
	} else {
		at = e.cursor.Position
		if !before && at < e.doc.Length() {
			at = e.doc.Next(at)
		}
	}
	e.doc.Insert(at, e.register)
	e.cursor.Position = at + len(e.register)
	e.touch()
}
