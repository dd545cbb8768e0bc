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
package commander

import (
	"strings"

	gott "github.com/motelab/mote/types"
)

// The Commander converts host input into commands for the Editor. It owns
// the mode state machine, the pending operator, and the command-line
// buffer. One key or text event is fully processed before the next.
type Commander struct {
	editor   gott.Editor
	mode     int
	pending  pending // operator sequence in progress
	command  string  // command as it is being typed on the command line
	suppress bool    // swallow the text event echoing a mode-switch key
}

func NewCommander(e gott.Editor) *Commander {
	return &Commander{editor: e, mode: gott.ModeNormal}
}

func (c *Commander) GetMode() int {
	return c.mode
}

// SetMode forces a mode directly; hosts use it when switching into the
// editor from outside. Any pending operator is abandoned and the command
// buffer is reset for the new mode.
func (c *Commander) SetMode(m int) {
	c.mode = m
	c.pending = pending{}
	if m == gott.ModeCommand {
		c.command = ":"
	} else {
		c.command = ""
	}
}

func (c *Commander) CommandBuffer() string {
	return c.command
}

// ModeLabel is the status text for the current mode: the pending operator
// keys as a sub-label in normal mode, the live buffer in command mode.
func (c *Commander) ModeLabel() string {
	switch c.mode {
	case gott.ModeNormal:
		if c.pending.op != gott.OpNone {
			return "NORMAL (" + c.pending.keys() + ")"
		}
		return "NORMAL"
	case gott.ModeInsert:
		return "INSERT"
	case gott.ModeCommand:
		return c.command
	}
	return ""
}

// ProcessKey dispatches one key event. It reports whether the key meant
// anything to the engine, and the action, if any, the host should perform.
func (c *Commander) ProcessKey(event gott.KeyEvent) (bool, int) {
	// a suppression token not claimed by a text event dies here
	c.suppress = false

	// modified keys belong to the host's global shortcuts
	if event.Mods.Ctrl || event.Mods.Alt {
		return false, gott.ActionNone
	}

	switch c.mode {
	case gott.ModeNormal:
		return c.processNormalKey(event), gott.ActionNone
	case gott.ModeInsert:
		return c.processInsertKey(event), gott.ActionNone
	case gott.ModeCommand:
		return c.processCommandKey(event)
	}
	return false, gott.ActionNone
}

func (c *Commander) processNormalKey(event gott.KeyEvent) bool {
	// an operator sequence in progress has highest precedence
	if c.pending.op != gott.OpNone {
		if c.processPendingKey(event) {
			return true
		}
		// abandoned; the same key is processed as an ordinary key below
	}

	e := c.editor
	switch event.Key {
	//
	// a few keys open multi-key operator sequences
	//
	case gott.KeyD:
		c.pending = pending{op: gott.OpDelete}
	case gott.KeyY:
		c.pending = pending{op: gott.OpYank}
	case gott.KeyC:
		c.pending = pending{op: gott.OpChange}
	//
	// cursor movement
	//
	case gott.KeyH, gott.KeyArrowLeft:
		e.MoveCursor(gott.MoveLeft)
	case gott.KeyL, gott.KeyArrowRight:
		e.MoveCursor(gott.MoveRight)
	case gott.KeyK, gott.KeyArrowUp:
		e.MoveCursor(gott.MoveUp)
	case gott.KeyJ, gott.KeyArrowDown:
		e.MoveCursor(gott.MoveDown)
	case gott.KeyW:
		e.MoveToNextWord()
	case gott.KeyB:
		e.MoveToPreviousWord()
	case gott.Key0:
		e.MoveToStartOfLine()
	case gott.Key4: // '$'
		if !event.Mods.Shift {
			return false
		}
		e.MoveToEndOfLine()
	//
	// mode switches
	//
	case gott.KeyI:
		if event.Mods.Shift {
			e.MoveToStartOfLine()
		}
		c.enterInsert()
	case gott.KeyA:
		if event.Mods.Shift {
			e.MoveToEndOfLine()
		} else {
			e.AdvanceCursor()
		}
		c.enterInsert()
	case gott.KeyO:
		if event.Mods.Shift {
			e.OpenLineAbove()
		} else {
			e.OpenLineBelow()
		}
		c.enterInsert()
	case gott.Key9: // ':'
		if !event.Mods.Shift {
			return false
		}
		c.mode = gott.ModeCommand
		c.command = ":"
		c.suppress = true
	//
	// direct edits
	//
	case gott.KeyX:
		e.DeleteCharAtCursor()
	case gott.KeyP:
		e.Paste(event.Mods.Shift)
	default:
		return false
	}
	return true
}

// enterInsert switches to insert mode and arms the one-shot suppression
// token so the text event produced by the same key press is not inserted.
func (c *Commander) enterInsert() {
	c.mode = gott.ModeInsert
	c.suppress = true
}

func (c *Commander) processInsertKey(event gott.KeyEvent) bool {
	e := c.editor
	switch event.Key {
	case gott.KeyEscape:
		// the normal-mode cursor sits on a character, not after it
		c.mode = gott.ModeNormal
		e.RetreatCursor()
	case gott.KeyEnter:
		e.InsertText("\n")
	case gott.KeyTab:
		e.InsertText("\t")
	case gott.KeySpace:
		e.InsertText(" ")
	case gott.KeyBackspace:
		e.BackspaceChar()
	case gott.KeyDelete:
		e.DeleteCharForward()
	case gott.KeyArrowLeft:
		e.MoveCursor(gott.MoveLeft)
	case gott.KeyArrowRight:
		e.MoveCursor(gott.MoveRight)
	case gott.KeyArrowUp:
		e.MoveCursor(gott.MoveUp)
	case gott.KeyArrowDown:
		e.MoveCursor(gott.MoveDown)
	case gott.KeyHome:
		e.MoveToStartOfLine()
	case gott.KeyEnd:
		e.MoveToEndOfLine()
	default:
		return false
	}
	return true
}

// ProcessText handles character input, delivered separately from key
// events in the order the host's input system produced them.
func (c *Commander) ProcessText(text string) bool {
	if c.suppress {
		// this is the echo of the key that just switched modes
		c.suppress = false
		return true
	}
	switch c.mode {
	case gott.ModeInsert:
		var insert strings.Builder
		for _, r := range text {
			if r >= ' ' || r == '\n' || r == '\t' {
				insert.WriteRune(r)
			}
		}
		if insert.Len() > 0 {
			c.editor.InsertText(insert.String())
		}
		return true
	case gott.ModeCommand:
		c.appendCommandText(text)
		return true
	}
	return false
}
