package game

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CanonicalName upper-cases s the way player input is upper-cased, so exit
// labels and item names from the world files match what the player types.
// A Caser keeps state, so one is made per call.
func CanonicalName(s string) string {
	return cases.Upper(language.Und).String(s)
}
