// Package display formats user-facing notices for the hevcparam CLI.
//
// A Warning groups a title, an optional explanation, the individual items
// it is about and a suggested fix:
//
//	warning := display.Warning{
//	    Title:      "Validation failed: 2 problem(s)",
//	    Items:      failures,
//	    Suggestion: "Adjust the options named above and run validate again",
//	}
//	warning.Display(os.Stderr)
//
// Colors come from logger.Palette and are only emitted on terminals.
package display
