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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/motelab/mote/commander"
	"github.com/motelab/mote/editor"
	"github.com/motelab/mote/screen"
	gott "github.com/motelab/mote/types"
)

func main() {

	var filename string
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // run a lisp script and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			filename = argi
		}
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	created := false
	if filename != "" {
		b, err := os.ReadFile(filename)
		if err != nil {
			// a file that doesn't exist yet starts empty
			created = true
		} else {
			e.Load(string(b))
		}
	}

	if script != "" {
		// Run a mote script and exit.
		fmt.Println(c.ParseEvalFile(script))
		return
	}

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return
	}
	defer s.Close()
	s.SetFileName(filename)

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.motelog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	if created {
		// a brand-new file opens straight into insert mode
		c.SetMode(gott.ModeInsert)
		e.SetCursorOffset(0)
	}

	// Run the main event loop.
	running := true
	for running {
		s.Render(e, c)
		action := gott.ActionNone
		event := s.GetNextEvent()
		switch event.Type {
		case screen.EventResize:
			continue
		case screen.EventKey:
			consumed, a := c.ProcessKey(event.Key)
			action = a
			if !consumed && event.Key.Mods.Ctrl {
				// host shortcuts for chords the engine passed on
				switch event.Key.Key {
				case gott.KeyS:
					action = gott.ActionSave
				case gott.KeyQ:
					action = gott.ActionQuit
				}
			}
		case screen.EventRune:
			// a rune press is a key chord followed by character input
			if k, ok := gott.KeyForRune(event.Ch); ok {
				_, a := c.ProcessKey(k)
				action = a
			}
			c.ProcessText(string(event.Ch))
		}
		switch action {
		case gott.ActionSave:
			save(e, filename)
		case gott.ActionQuit:
			running = false
		case gott.ActionSaveQuit:
			save(e, filename)
			running = false
		}
	}
}

func save(e *editor.Editor, filename string) {
	if filename == "" {
		return
	}
	if err := os.WriteFile(filename, []byte(e.Contents()), 0644); err != nil {
		log.Output(1, err.Error())
	}
}
