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
	gott "github.com/motelab/mote/types"
)

// pending tracks an in-progress operator sequence: the operator already
// seen and whether an 'i' lookahead is waiting for its text object. It is
// parser state only; the register never stands in for it.
type pending struct {
	op    int
	inner bool
}

// keys renders the sequence for the mode label: "d", "di", ...
func (p pending) keys() string {
	var s string
	switch p.op {
	case gott.OpDelete:
		s = "d"
	case gott.OpYank:
		s = "y"
	case gott.OpChange:
		s = "c"
	}
	if p.inner {
		s += "i"
	}
	return s
}

func operatorKey(op int) gott.Key {
	switch op {
	case gott.OpDelete:
		return gott.KeyD
	case gott.OpYank:
		return gott.KeyY
	case gott.OpChange:
		return gott.KeyC
	}
	return gott.KeyNone
}

// processPendingKey resolves the next key against the pending operator
// and reports whether the key was consumed. When it was not, the operator
// has been abandoned with no mutation and the caller reprocesses the same
// key as an ordinary normal-mode key.
func (c *Commander) processPendingKey(event gott.KeyEvent) bool {
	p := c.pending
	e := c.editor

	if p.inner {
		// exactly one more key; only 'w' is defined
		if event.Key == gott.KeyW {
			switch p.op {
			case gott.OpDelete:
				e.DeleteInnerWord()
			case gott.OpYank:
				e.YankInnerWord()
			case gott.OpChange:
				e.DeleteInnerWord()
				c.enterInsert()
			}
			c.pending = pending{}
			return true
		}
		c.pending = pending{}
		return false
	}

	switch event.Key {
	case gott.KeyI:
		c.pending.inner = true
		return true
	case operatorKey(p.op): // doubled operator works line-wise
		switch p.op {
		case gott.OpDelete:
			e.DeleteLine()
		case gott.OpYank:
			e.YankLine()
		case gott.OpChange:
			e.ChangeLine()
			c.enterInsert()
		}
		c.pending = pending{}
		return true
	case gott.KeyW:
		switch p.op {
		case gott.OpDelete:
			e.DeleteToNextWord()
		case gott.OpYank:
			e.YankToNextWord()
		case gott.OpChange:
			e.DeleteToNextWord()
			c.enterInsert()
		}
		c.pending = pending{}
		return true
	}

	c.pending = pending{}
	return false
}
