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
	"unicode/utf8"

	gott "github.com/motelab/mote/types"
)

// Command-line mode. The buffer always starts with ':'; the leading colon
// is permanent while the mode lasts.

func (c *Commander) processCommandKey(event gott.KeyEvent) (bool, int) {
	switch event.Key {
	case gott.KeyEscape:
		c.mode = gott.ModeNormal
		c.command = ""
	case gott.KeyEnter:
		action := parseCommand(c.command)
		c.mode = gott.ModeNormal
		c.command = ""
		return true, action
	case gott.KeyBackspace:
		if len(c.command) > 1 {
			_, size := utf8.DecodeLastRuneInString(c.command)
			c.command = c.command[:len(c.command)-size]
		}
	case gott.KeySpace:
		c.command += " "
	default:
		return false, gott.ActionNone
	}
	return true, gott.ActionNone
}

func (c *Commander) appendCommandText(text string) {
	for _, r := range text {
		if r >= ' ' {
			c.command += string(r)
		}
	}
}

// parseCommand maps a complete command buffer to a host action. The
// vocabulary is fixed; anything unrecognized resolves to no action, not
// an error.
func parseCommand(buffer string) int {
	switch buffer {
	case ":w":
		return gott.ActionSave
	case ":q":
		return gott.ActionQuit
	case ":wq":
		return gott.ActionSaveQuit
	}
	return gott.ActionNone
}
