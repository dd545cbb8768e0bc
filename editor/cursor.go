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
	"unicode/utf8"
)

// The Cursor is a byte offset into the document. Line and Col are always
// derived from Position; Desired is the sticky column that vertical motion
// aims for, refreshed by horizontal motion and edits but left alone across
// a run of vertical moves.
type Cursor struct {
	Position int
	Line     int
	Col      int
	Desired  int
}

// Sync re-derives Line and Col from Position. Columns count runes from the
// start of the line, never raw bytes.
func (c *Cursor) Sync(d *Document) {
	before := d.text[:c.Position]
	c.Line = bytes.Count(before, []byte{'\n'})
	c.Col = utf8.RuneCount(before[d.LineStart(c.Position):])
}
