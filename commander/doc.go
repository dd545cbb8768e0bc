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

// Package commander converts user input and scripts into commands for
// the mote editor. It owns the mode state machine: normal mode routes
// keys to motions and multi-key operator sequences, insert mode routes
// text into the document, and command mode accumulates a colon-prefixed
// buffer that parses to host actions. The commander reports whether each
// event was consumed so the host can route unclaimed input elsewhere.
package commander
