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
package types

// Editor modes
const (
	ModeNormal  = 0
	ModeInsert  = 1
	ModeCommand = 2
)

// Pending operators
const (
	OpNone   = 0
	OpDelete = 1
	OpYank   = 2
	OpChange = 3
)

// Actions requested from the host
const (
	ActionNone     = 0
	ActionSave     = 1
	ActionQuit     = 2
	ActionSaveQuit = 3
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Key identifies a logical key independently of the host's input system.
// Letter and digit keys are unshifted; shift state travels in Modifiers.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyHome
	KeyEnd
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Modifiers carried by a key event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// A KeyEvent is one discrete key press delivered by the host.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// The Editor manages a document, a cursor, and the yank register.
// The commander drives it through this interface.
type Editor interface {
	// document surface
	Load(text string)
	Contents() string
	CursorOffset() int
	SetCursorOffset(offset int)
	Position() (line, col int)

	// cursor motion
	MoveCursor(direction int)
	MoveToNextWord()
	MoveToPreviousWord()
	MoveToStartOfLine()
	MoveToEndOfLine()
	AdvanceCursor()
	RetreatCursor()

	// insert-mode editing
	InsertText(text string)
	BackspaceChar()
	DeleteCharForward()
	OpenLineBelow()
	OpenLineAbove()

	// normal-mode edits and operators
	DeleteCharAtCursor()
	DeleteLine()
	YankLine()
	ChangeLine()
	DeleteToNextWord()
	YankToNextWord()
	DeleteInnerWord()
	YankInnerWord()
	Paste(before bool)
	Register() string
}

// The Commander owns the editing mode and converts host input into
// commands for the Editor.
type Commander interface {
	SetMode(int)
	GetMode() int
	ModeLabel() string
	CommandBuffer() string
}
