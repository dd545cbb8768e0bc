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

// Package editor implements the text side of the mote engine: the
// document, the cursor, word and line motions, and the single-slot yank
// register. All offsets are byte offsets that land on rune boundaries;
// columns count codepoints. The editor performs no I/O and knows nothing
// about modes, keys, or the screen; the commander drives it.
package editor
