package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestCanonicalName(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"ascii":       {input: "keys", exp: "KEYS"},
		"already":     {input: "LAMP", exp: "LAMP"},
		"sharp s":     {input: "straße", exp: "STRASSE"},
		"accented":    {input: "épée", exp: "ÉPÉE"},
		"with spaces": {input: "brass lamp", exp: "BRASS LAMP"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "canonical", CanonicalName(tt.input), tt.exp)
		})
	}
}
