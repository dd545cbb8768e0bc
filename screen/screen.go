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
package screen

import (
	"fmt"
	"log"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	gott "github.com/motelab/mote/types"
)

// Host event types
const (
	EventKey    = 0 // a logical key chord
	EventRune   = 1 // a printable rune: both a key chord and text input
	EventResize = 2
)

// An Event is one translated terminal input.
type Event struct {
	Type int
	Key  gott.KeyEvent
	Ch   rune
}

// The Screen draws the state of an Editor and translates terminal input
// into the engine's event vocabulary. Scrolling is presentation state and
// lives here, not in the engine.
type Screen struct {
	fileName   string
	rows, cols int
	rowOffset  int
	colOffset  int
}

func NewScreen() *Screen {
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) SetFileName(name string) {
	s.fileName = name
}

func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.cols, s.rows = termbox.Size()

	lines := strings.Split(e.Contents(), "\n")
	line, col := e.Position()
	s.scroll(line, col)

	textRows := s.rows - 2
	for y := 0; y < textRows; y++ {
		i := s.rowOffset + y
		if i >= len(lines) {
			break
		}
		s.renderLine(y, lines[i])
	}
	s.renderInfoBar(e, line, len(lines))
	s.renderMessageBar(c)
	termbox.SetCursor(s.cursorX(lines, line, col)-s.colOffset, line-s.rowOffset)
	termbox.Flush()
}

// scroll keeps the cursor inside the text area.
func (s *Screen) scroll(line, col int) {
	textRows := s.rows - 2
	if line < s.rowOffset {
		s.rowOffset = line
	}
	if line-s.rowOffset >= textRows {
		s.rowOffset = line - textRows + 1
	}
	if col < s.colOffset {
		s.colOffset = col
	}
	if col-s.colOffset >= s.cols {
		s.colOffset = col - s.cols + 1
	}
}

func (s *Screen) renderLine(y int, text string) {
	x := 0
	skipped := 0
	for _, ch := range text {
		if skipped < s.colOffset {
			skipped++
			continue
		}
		if x >= s.cols {
			break
		}
		termbox.SetCell(x, y, ch, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}

// cursorX computes the display column of the cursor, widening for
// double-width runes. Engine columns count codepoints; widths belong
// here.
func (s *Screen) cursorX(lines []string, line, col int) int {
	if line >= len(lines) {
		return 0
	}
	x := 0
	for i, ch := range []rune(lines[line]) {
		if i >= col {
			break
		}
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (s *Screen) renderInfoBar(e gott.Editor, line, lineCount int) {
	finalText := fmt.Sprintf(" %d/%d ", line+1, lineCount)
	text := " mote - " + s.fileName + " "
	for len(text) < s.cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) renderMessageBar(c gott.Commander) {
	line := c.ModeLabel()
	if len(line) > s.cols {
		line = line[0:s.cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.rows-1, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
}

// GetNextEvent blocks for one terminal event and translates it. Runes
// come back as EventRune so the caller can deliver both the key chord and
// the character input, in that order, the way a GUI input system would.
func (s *Screen) GetNextEvent() *Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
		return &Event{Type: EventResize}
	}
	if event.Type != termbox.EventKey {
		return &Event{Type: EventResize}
	}
	if event.Ch != 0 {
		return &Event{Type: EventRune, Ch: event.Ch}
	}
	return &Event{Type: EventKey, Key: key(event.Key)}
}

func key(k termbox.Key) gott.KeyEvent {
	switch k {
	case termbox.KeyEsc:
		return gott.KeyEvent{Key: gott.KeyEscape}
	case termbox.KeyEnter:
		return gott.KeyEvent{Key: gott.KeyEnter}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyEvent{Key: gott.KeyBackspace}
	case termbox.KeyDelete:
		return gott.KeyEvent{Key: gott.KeyDelete}
	case termbox.KeyTab:
		return gott.KeyEvent{Key: gott.KeyTab}
	case termbox.KeySpace:
		return gott.KeyEvent{Key: gott.KeySpace}
	case termbox.KeyHome:
		return gott.KeyEvent{Key: gott.KeyHome}
	case termbox.KeyEnd:
		return gott.KeyEvent{Key: gott.KeyEnd}
	case termbox.KeyArrowUp:
		return gott.KeyEvent{Key: gott.KeyArrowUp}
	case termbox.KeyArrowDown:
		return gott.KeyEvent{Key: gott.KeyArrowDown}
	case termbox.KeyArrowLeft:
		return gott.KeyEvent{Key: gott.KeyArrowLeft}
	case termbox.KeyArrowRight:
		return gott.KeyEvent{Key: gott.KeyArrowRight}
	case termbox.KeyCtrlS:
		return gott.KeyEvent{Key: gott.KeyS, Mods: gott.Modifiers{Ctrl: true}}
	case termbox.KeyCtrlQ:
		return gott.KeyEvent{Key: gott.KeyQ, Mods: gott.Modifiers{Ctrl: true}}
	default:
		return gott.KeyEvent{Key: gott.KeyNone}
	}
}
