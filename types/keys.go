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

// KeyForRune maps a printable rune to the key chord a keyboard would
// produce for it. Hosts use it to turn character input into logical key
// events; ok is false for runes with no logical key.
func KeyForRune(r rune) (event KeyEvent, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyEvent{Key: KeyA + Key(r-'a')}, true
	case r >= 'A' && r <= 'Z':
		return KeyEvent{Key: KeyA + Key(r-'A'), Mods: Modifiers{Shift: true}}, true
	case r >= '0' && r <= '9':
		return KeyEvent{Key: Key0 + Key(r-'0')}, true
	}
	switch r {
	case ':':
		return KeyEvent{Key: Key9, Mods: Modifiers{Shift: true}}, true
	case '$':
		return KeyEvent{Key: Key4, Mods: Modifiers{Shift: true}}, true
	case ' ':
		return KeyEvent{Key: KeySpace}, true
	case '\n':
		return KeyEvent{Key: KeyEnter}, true
	case '\t':
		return KeyEvent{Key: KeyTab}, true
	case 0x1b:
		return KeyEvent{Key: KeyEscape}, true
	}
	return KeyEvent{}, false
}
