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
	"errors"
	"fmt"

	"github.com/steelseries/golisp"

	gott "github.com/motelab/mote/types"
)

// Lisp scripting. Scripts drive the engine through the same event surface
// as an interactive host: feed keys, feed text, read back state.

// the commander bound to the lisp primitives during evaluation
var lispCommander *Commander

func init() {
	golisp.MakePrimitiveFunction("keys", "1", KeysImpl)
	golisp.MakePrimitiveFunction("text", "1", TextImpl)
	golisp.MakePrimitiveFunction("contents", "0", ContentsImpl)
	golisp.MakePrimitiveFunction("cursor-line", "0", CursorLineImpl)
	golisp.MakePrimitiveFunction("cursor-column", "0", CursorColumnImpl)
	golisp.MakePrimitiveFunction("mode-label", "0", ModeLabelImpl)
}

func boundCommander() (*Commander, error) {
	if lispCommander == nil {
		return nil, errors.New("no commander is bound")
	}
	return lispCommander, nil
}

// KeysImpl feeds a string of characters as logical key events.
func KeysImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := boundCommander()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("keys requires a string argument")
	}
	consumed := true
	for _, r := range golisp.StringValue(val) {
		event, ok := gott.KeyForRune(r)
		if !ok {
			consumed = false
			continue
		}
		handled, _ := c.ProcessKey(event)
		consumed = consumed && handled
	}
	return golisp.BooleanWithValue(consumed), nil
}

// TextImpl feeds a string as one text-input event.
func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := boundCommander()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("text requires a string argument")
	}
	return golisp.BooleanWithValue(c.ProcessText(golisp.StringValue(val))), nil
}

func ContentsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := boundCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.Contents()), nil
}

func CursorLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := boundCommander()
	if err != nil {
		return nil, err
	}
	line, _ := c.editor.Position()
	return golisp.IntegerWithValue(int64(line)), nil
}

func CursorColumnImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := boundCommander()
	if err != nil {
		return nil, err
	}
	_, col := c.editor.Position()
	return golisp.IntegerWithValue(int64(col)), nil
}

func ModeLabelImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := boundCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.ModeLabel()), nil
}

// ParseEval evaluates a lisp expression against this commander and
// returns a printable result.
func (c *Commander) ParseEval(command string) string {
	lispCommander = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}

// ParseEvalFile runs a script file against this commander.
func (c *Commander) ParseEvalFile(path string) string {
	lispCommander = c
	value, err := golisp.ProcessFile(path)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}
