// Package macro runs macropad configurations: layers of numbered buttons
// and rotary knobs whose actions type text, press key combinations or
// switch layers.
//
// Configuration files are JSON as written by the macropad editor and are
// validated against an embedded JSON schema before use:
//
//	{
//	  "layers": [
//	    {
//	      "id": 1,
//	      "name": "Work",
//	      "buttons": {
//	        "1": {"action": "Type Text", "key": "Grüezi mitenand"},
//	        "2": {"action": "Key combo", "key": "CTRL+ALT+DELETE"},
//	        "6": {"action": "Layer Switch"}
//	      },
//	      "knobs": {
//	        "A": {"cwAction": "Increase Volume", "ccwAction": "Decrease Volume"}
//	      }
//	    }
//	  ]
//	}
//
// A [Pad] executes buttons against a [layout.Translator], and a [Watcher]
// reloads the file when it changes.
package macro
