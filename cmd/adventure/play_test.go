package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	err := play(context.Background(), strings.NewReader("west\ntake keys\ninventory\nquit\n"), &out, filepath.Join("..", "..", "data"), "Tiny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, exp := range []string{"Welcome, to the Adventure games.", "KEYS taken", "KEYS: a set of keys", "Thanks for playing!"} {
		if !strings.Contains(text, exp) {
			t.Errorf("output is missing %q:\n%s", exp, text)
		}
	}
}

func TestPlay_MissingFiles(t *testing.T) {
	err := play(context.Background(), strings.NewReader(""), &bytes.Buffer{}, t.TempDir(), "Nowhere")
	if !errors.Is(err, game.ErrWorldFileMissing) {
		t.Errorf("expected ErrWorldFileMissing, got %v", err)
	}
}

func TestPlay_MalformedWorld(t *testing.T) {
	dir := t.TempDir()
	rooms, items := game.VariantPaths(dir, "Bad")
	if err := os.WriteFile(rooms, []byte("2\nNowhere\nNothing here.\n"), 0644); err != nil {
		t.Fatalf("writing rooms: %v", err)
	}
	if err := os.WriteFile(items, nil, 0644); err != nil {
		t.Fatalf("writing items: %v", err)
	}

	err := play(context.Background(), strings.NewReader(""), &bytes.Buffer{}, dir, "Bad")
	testutil.AssertErrorContains(t, err, "start room 1 is missing")
}

func TestRootCmd_Args(t *testing.T) {
	tests := map[string]struct {
		args   []string
		expErr string
	}{
		"no variant": {
			args:   []string{},
			expErr: "accepts 1 arg(s), received 0",
		},
		"two variants": {
			args:   []string{"Tiny", "Small"},
			expErr: "accepts 1 arg(s), received 2",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			err := rootCmd.Execute()
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestPlay_Win(t *testing.T) {
	script := strings.Join([]string{
		"west", "take keys", "east", "in", "take lamp", "out", "west", "down", "east",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := play(context.Background(), strings.NewReader(script), &out, filepath.Join("..", "..", "data"), "Tiny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "You have found the way through!") {
		t.Errorf("expected to reach daylight:\n%s", text)
	}
	if !strings.HasSuffix(text, "Congratulations, you have won!\n") {
		t.Errorf("expected winning message at the end:\n%s", text)
	}
}
