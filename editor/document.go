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
	"bytes"
	"strings"
	"unicode/utf8"
)

// A Document holds the text being edited as UTF-8 bytes. Every offset it
// accepts or returns is a rune boundary in [0, Length()].
type Document struct {
	text []byte
}

func NewDocument(text string) *Document {
	return &Document{text: []byte(text)}
}

func (d *Document) Load(text string) {
	d.text = []byte(text)
}

func (d *Document) Length() int {
	return len(d.text)
}

func (d *Document) String() string {
	return string(d.text)
}

func (d *Document) Slice(start, end int) string {
	return string(d.text[start:end])
}

// Clamp forces an offset into [0, Length()] and snaps it back to the
// nearest rune boundary. Offsets arriving from outside the editor pass
// through here before use.
func (d *Document) Clamp(at int) int {
	if at < 0 {
		return 0
	}
	if at > len(d.text) {
		at = len(d.text)
	}
	for at > 0 && !utf8.RuneStart(d.text[at]) {
		at--
	}
	return at
}

// RuneAt decodes the rune starting at the given offset.
func (d *Document) RuneAt(at int) (rune, int) {
	return utf8.DecodeRune(d.text[at:])
}

// Next returns the offset just past the rune at the given offset.
func (d *Document) Next(at int) int {
	if at >= len(d.text) {
		return len(d.text)
	}
	_, size := utf8.DecodeRune(d.text[at:])
	return at + size
}

// Prev returns the offset of the rune before the given offset.
func (d *Document) Prev(at int) int {
	if at <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRune(d.text[:at])
	return at - size
}

// LineStart returns the offset just past the preceding line terminator.
func (d *Document) LineStart(at int) int {
	return bytes.LastIndexByte(d.text[:at], '\n') + 1
}

// LineEnd returns the offset of the line's terminator, or the end of the
// document when the line is unterminated.
func (d *Document) LineEnd(at int) int {
	if i := bytes.IndexByte(d.text[at:], '\n'); i >= 0 {
		return at + i
	}
	return len(d.text)
}

func (d *Document) Insert(at int, text string) {
	d.text = append(d.text[:at], append([]byte(text), d.text[at:]...)...)
}

// Delete removes [start, end) and returns the removed text.
func (d *Document) Delete(start, end int) string {
	removed := string(d.text[start:end])
	d.text = append(d.text[:start], d.text[end:]...)
	return removed
}

// Lines splits the document for display. A trailing terminator yields a
// final empty line, matching how the cursor can sit past it.
func (d *Document) Lines() []string {
	return strings.Split(string(d.text), "\n")
}
