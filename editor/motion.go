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
	"unicode"
)

// Motion helpers are pure functions over a Document. Under a pending
// operator the same computations define the operator's span.

// Word characters for inner-word spans: alphanumerics and underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NextWordStart skips the run of non-whitespace at the offset, then the
// following whitespace, landing on the next word or the end of the
// document. At the end of the document it returns the offset unchanged.
func NextWordStart(d *Document, at int) int {
	p := at
	n := d.Length()
	for p < n {
		r, _ := d.RuneAt(p)
		if unicode.IsSpace(r) {
			break
		}
		p = d.Next(p)
	}
	for p < n {
		r, _ := d.RuneAt(p)
		if !unicode.IsSpace(r) {
			break
		}
		p = d.Next(p)
	}
	return p
}

// PrevWordStart skips whitespace backward, then non-whitespace backward,
// landing on the start of the run it found. At offset 0 it returns 0.
func PrevWordStart(d *Document, at int) int {
	p := at
	for p > 0 {
		q := d.Prev(p)
		r, _ := d.RuneAt(q)
		if !unicode.IsSpace(r) {
			break
		}
		p = q
	}
	for p > 0 {
		q := d.Prev(p)
		r, _ := d.RuneAt(q)
		if unicode.IsSpace(r) {
			break
		}
		p = q
	}
	return p
}

// InnerWord returns the span of the maximal run of word characters
// containing the offset, or the single rune at the offset when it is not a
// word character. At the end of the document the span is empty.
func InnerWord(d *Document, at int) (start, end int) {
	if at >= d.Length() {
		return at, at
	}
	r, size := d.RuneAt(at)
	if !isWordChar(r) {
		return at, at + size
	}
	start = at
	for start > 0 {
		q := d.Prev(start)
		pr, _ := d.RuneAt(q)
		if !isWordChar(pr) {
			break
		}
		start = q
	}
	end = d.Next(at)
	for end < d.Length() {
		er, _ := d.RuneAt(end)
		if !isWordChar(er) {
			break
		}
		end = d.Next(end)
	}
	return start, end
}

// PositionBelow finds the offset on the following line that matches the
// target column, clamped to that line's length. Landing on an empty line
// yields its start. ok is false on the last line.
func PositionBelow(d *Document, at, targetCol int) (pos int, ok bool) {
	i := bytes.IndexByte(d.text[at:], '\n')
	if i < 0 {
		return 0, false
	}
	nextStart := at + i + 1
	if nextStart >= d.Length() {
		return 0, false
	}
	nextEnd := d.LineEnd(nextStart)
	if nextStart == nextEnd {
		return nextStart, true
	}
	return advanceToColumn(d, nextStart, nextEnd, targetCol), true
}

// PositionAbove is the inverse of PositionBelow; ok is false on the first
// line.
func PositionAbove(d *Document, at, targetCol int) (pos int, ok bool) {
	curStart := d.LineStart(at)
	if curStart == 0 {
		return 0, false
	}
	prevStart := d.LineStart(curStart - 1)
	prevEnd := curStart - 1
	if prevStart == prevEnd {
		return prevStart, true
	}
	return advanceToColumn(d, prevStart, prevEnd, targetCol), true
}

// advanceToColumn walks rune by rune from start toward end, stopping at
// the target column or the end of the line, whichever comes first.
func advanceToColumn(d *Document, start, end, targetCol int) int {
	p := start
	col := 0
	for p < end && col < targetCol {
		p = d.Next(p)
		col++
	}
	return p
}
