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
	"testing"

	"github.com/motelab/mote/editor"
	gott "github.com/motelab/mote/types"
)

func testCommander(content string, offset int) (*Commander, *editor.Editor) {
	e := editor.NewEditor()
	e.Load(content)
	e.SetCursorOffset(offset)
	return NewCommander(e), e
}

// press delivers a character the way a terminal host does: the key chord
// first, then the text event it produced.
func press(c *Commander, r rune) {
	if event, ok := gott.KeyForRune(r); ok {
		c.ProcessKey(event)
	}
	c.ProcessText(string(r))
}

func pressAll(c *Commander, s string) {
	for _, r := range s {
		press(c, r)
	}
}

func escape(c *Commander) {
	c.ProcessKey(gott.KeyEvent{Key: gott.KeyEscape})
}

func checkMode(t *testing.T, c *Commander, expected int) {
	t.Helper()
	if mode := c.GetMode(); mode != expected {
		t.Errorf("Unexpected mode: %d (expected %d)", mode, expected)
	}
}

func TestInsertAndEscape(t *testing.T) {
	c, e := testCommander("abc", 1)
	press(c, 'i')
	checkMode(t, c, gott.ModeInsert)
	if e.Contents() != "abc" {
		t.Errorf("The mode-switch key should not be inserted: '%s'", e.Contents())
	}
	c.ProcessText("XY")
	if e.Contents() != "aXYbc" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	escape(c)
	checkMode(t, c, gott.ModeNormal)
	if e.CursorOffset() != 2 {
		t.Errorf("Escape should step the cursor back: %d", e.CursorOffset())
	}
}

func TestInsertVariants(t *testing.T) {
	c, e := testCommander("ab", 0)
	press(c, 'a')
	checkMode(t, c, gott.ModeInsert)
	if e.CursorOffset() != 1 {
		t.Errorf("'a' should advance the cursor: %d", e.CursorOffset())
	}
	escape(c)
	press(c, 'A')
	if e.CursorOffset() != 2 {
		t.Errorf("'A' should go to the end of the line: %d", e.CursorOffset())
	}
	escape(c)
	press(c, 'I')
	if e.CursorOffset() != 0 {
		t.Errorf("'I' should go to the start of the line: %d", e.CursorOffset())
	}
	escape(c)
}

func TestOpenLineCommands(t *testing.T) {
	c, e := testCommander("ab\ncd", 0)
	press(c, 'o')
	checkMode(t, c, gott.ModeInsert)
	if e.Contents() != "ab\n\ncd" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	if e.CursorOffset() != 3 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
	c, e = testCommander("ab\ncd", 4)
	press(c, 'O')
	if e.Contents() != "ab\n\ncd" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	if e.CursorOffset() != 3 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
	checkMode(t, c, gott.ModeInsert)
}

func TestEscapeInNormalModeIsUnhandled(t *testing.T) {
	c, e := testCommander("abc", 1)
	handled, action := c.ProcessKey(gott.KeyEvent{Key: gott.KeyEscape})
	if handled || action != gott.ActionNone {
		t.Errorf("Escape in normal mode should fall through: %v %d", handled, action)
	}
	checkMode(t, c, gott.ModeNormal)
	if e.Contents() != "abc" || e.CursorOffset() != 1 {
		t.Errorf("Nothing should change: '%s' %d", e.Contents(), e.CursorOffset())
	}
}

func TestDeleteLineCommand(t *testing.T) {
	c, e := testCommander("hello", 2)
	pressAll(c, "dd")
	if e.Contents() != "" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	if e.CursorOffset() != 0 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
	if c.ModeLabel() != "NORMAL" {
		t.Errorf("Unexpected label: '%s'", c.ModeLabel())
	}
}

func TestYankPasteDuplicatesLine(t *testing.T) {
	c, e := testCommander("alpha\nbeta", 2)
	pressAll(c, "yyp")
	if e.Contents() != "alpha\nalpha\nbeta" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	if e.Register() != "alpha\n" {
		t.Errorf("Paste should not disturb the register: '%s'", e.Register())
	}
}

func TestDeleteInnerWordCommand(t *testing.T) {
	c, e := testCommander("hello world", 2)
	pressAll(c, "diw")
	if e.Contents() != " world" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	c, e = testCommander("hello world", 5)
	pressAll(c, "diw")
	if e.Contents() != "helloworld" {
		t.Errorf("On a space 'diw' removes just the space: '%s'", e.Contents())
	}
}

func TestChangeWordEntersInsert(t *testing.T) {
	c, e := testCommander("hello world", 0)
	pressAll(c, "cw")
	checkMode(t, c, gott.ModeInsert)
	if e.Contents() != "world" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	c.ProcessText("bye ")
	if e.Contents() != "bye world" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
}

func TestChangeLineCommand(t *testing.T) {
	c, e := testCommander("one\ntwo", 1)
	pressAll(c, "cc")
	checkMode(t, c, gott.ModeInsert)
	if e.Contents() != "\ntwo" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
	if e.Register() != "one" {
		t.Errorf("Unexpected register: '%s'", e.Register())
	}
}

func TestPendingOperatorLabels(t *testing.T) {
	c, _ := testCommander("hello", 0)
	press(c, 'd')
	if c.ModeLabel() != "NORMAL (d)" {
		t.Errorf("Unexpected label: '%s'", c.ModeLabel())
	}
	press(c, 'i')
	if c.ModeLabel() != "NORMAL (di)" {
		t.Errorf("Unexpected label: '%s'", c.ModeLabel())
	}
	press(c, 'w')
	if c.ModeLabel() != "NORMAL" {
		t.Errorf("Unexpected label: '%s'", c.ModeLabel())
	}
}

func TestAbandonedOperatorReprocessesKey(t *testing.T) {
	c, e := testCommander("abc", 1)
	pressAll(c, "dh")
	if e.Contents() != "abc" {
		t.Errorf("Abandoning should not mutate: '%s'", e.Contents())
	}
	if e.CursorOffset() != 0 {
		t.Errorf("The abandoning key should act normally: %d", e.CursorOffset())
	}
	if c.ModeLabel() != "NORMAL" {
		t.Errorf("Unexpected label: '%s'", c.ModeLabel())
	}
}

func TestAbandonedInnerOperatorReprocessesKey(t *testing.T) {
	c, e := testCommander("abc", 0)
	pressAll(c, "yix")
	if e.Contents() != "bc" {
		t.Errorf("'x' after an abandoned 'yi' should delete: '%s'", e.Contents())
	}
	if e.Register() != "" {
		t.Errorf("Nothing should have been yanked: '%s'", e.Register())
	}
}

func TestCommandLineSaveQuit(t *testing.T) {
	c, _ := testCommander("hello", 0)
	press(c, ':')
	checkMode(t, c, gott.ModeCommand)
	if c.CommandBuffer() != ":" {
		t.Errorf("Unexpected buffer: '%s'", c.CommandBuffer())
	}
	pressAll(c, "wq")
	if c.CommandBuffer() != ":wq" {
		t.Errorf("Unexpected buffer: '%s'", c.CommandBuffer())
	}
	if c.ModeLabel() != ":wq" {
		t.Errorf("Unexpected label: '%s'", c.ModeLabel())
	}
	handled, action := c.ProcessKey(gott.KeyEvent{Key: gott.KeyEnter})
	if !handled || action != gott.ActionSaveQuit {
		t.Errorf("Unexpected result: %v %d", handled, action)
	}
	checkMode(t, c, gott.ModeNormal)
	if c.CommandBuffer() != "" {
		t.Errorf("The buffer should be cleared: '%s'", c.CommandBuffer())
	}
}

func TestCommandLineQuit(t *testing.T) {
	c, _ := testCommander("hello", 0)
	pressAll(c, ":q")
	_, action := c.ProcessKey(gott.KeyEvent{Key: gott.KeyEnter})
	if action != gott.ActionQuit {
		t.Errorf("Unexpected action: %d", action)
	}
	checkMode(t, c, gott.ModeNormal)
}

func TestCommandLineUnknownCommand(t *testing.T) {
	c, _ := testCommander("hello", 0)
	pressAll(c, ":zz")
	_, action := c.ProcessKey(gott.KeyEvent{Key: gott.KeyEnter})
	if action != gott.ActionNone {
		t.Errorf("Unknown commands resolve to no action: %d", action)
	}
	checkMode(t, c, gott.ModeNormal)
}

func TestCommandLineBackspaceKeepsColon(t *testing.T) {
	c, _ := testCommander("hello", 0)
	pressAll(c, ":w")
	c.ProcessKey(gott.KeyEvent{Key: gott.KeyBackspace})
	if c.CommandBuffer() != ":" {
		t.Errorf("Unexpected buffer: '%s'", c.CommandBuffer())
	}
	c.ProcessKey(gott.KeyEvent{Key: gott.KeyBackspace})
	if c.CommandBuffer() != ":" {
		t.Errorf("The colon is permanent: '%s'", c.CommandBuffer())
	}
}

func TestCommandLineEscape(t *testing.T) {
	c, _ := testCommander("hello", 0)
	pressAll(c, ":q")
	escape(c)
	checkMode(t, c, gott.ModeNormal)
	if c.CommandBuffer() != "" {
		t.Errorf("The buffer should be cleared: '%s'", c.CommandBuffer())
	}
}

func TestWordMotionAtEndOfDocument(t *testing.T) {
	c, e := testCommander("ab", 2)
	event, _ := gott.KeyForRune('w')
	handled, _ := c.ProcessKey(event)
	if !handled {
		t.Errorf("'w' is handled even when it cannot move")
	}
	if e.CursorOffset() != 2 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
}

func TestModifiedKeysPassThrough(t *testing.T) {
	c, _ := testCommander("hello", 0)
	handled, _ := c.ProcessKey(gott.KeyEvent{Key: gott.KeyS, Mods: gott.Modifiers{Ctrl: true}})
	if handled {
		t.Errorf("Ctrl chords belong to the host")
	}
	handled, _ = c.ProcessKey(gott.KeyEvent{Key: gott.KeyX, Mods: gott.Modifiers{Alt: true}})
	if handled {
		t.Errorf("Alt chords belong to the host")
	}
}

func TestSuppressionDiesOnNextKey(t *testing.T) {
	c, e := testCommander("ab", 0)
	event, _ := gott.KeyForRune('i')
	c.ProcessKey(event)
	c.ProcessKey(gott.KeyEvent{Key: gott.KeyArrowRight})
	c.ProcessText("z")
	if e.Contents() != "azb" {
		t.Errorf("A key event should clear the stale token: '%s'", e.Contents())
	}
}

func TestStickyColumnThroughKeys(t *testing.T) {
	c, e := testCommander("abcdef\nab\n\nabcde", 4)
	expected := []int{2, 0, 2, 4}
	for i, r := range "jjkk" {
		press(c, r)
		if _, col := e.Position(); col != expected[i] {
			t.Errorf("Key %d: unexpected column %d (expected %d)", i, col, expected[i])
		}
	}
}

func TestLineMotionKeys(t *testing.T) {
	c, e := testCommander("hello\nworld", 2)
	press(c, '$')
	if e.CursorOffset() != 5 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
	press(c, '0')
	if e.CursorOffset() != 0 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
	press(c, 'w')
	if e.CursorOffset() != 6 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
	press(c, 'b')
	if e.CursorOffset() != 0 {
		t.Errorf("Unexpected cursor offset: %d", e.CursorOffset())
	}
}

func TestInsertModeFiltersControlCharacters(t *testing.T) {
	c, e := testCommander("", 0)
	c.SetMode(gott.ModeInsert)
	c.ProcessText("a\x01b\n\tc")
	if e.Contents() != "ab\n\tc" {
		t.Errorf("Unexpected contents: '%s'", e.Contents())
	}
}

func TestSetMode(t *testing.T) {
	c, _ := testCommander("hello", 0)
	c.SetMode(gott.ModeCommand)
	if c.CommandBuffer() != ":" {
		t.Errorf("Unexpected buffer: '%s'", c.CommandBuffer())
	}
	c.SetMode(gott.ModeNormal)
	if c.CommandBuffer() != "" {
		t.Errorf("Unexpected buffer: '%s'", c.CommandBuffer())
	}
}
