package command

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestConfig_Unmarshal(t *testing.T) {
	raw := `{
		"world": {"data_dir": "data", "variant": "Tiny"},
		"listeners": [
			{"protocol": "telnet", "port": 4000},
			{"protocol": "ssh", "host": "127.0.0.1", "port": 4022, "host_key_path": "host_key"}
		]
	}`

	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "variant", cfg.World.Variant, "Tiny")
	testutil.AssertEqual(t, "listener count", len(cfg.Listeners), 2)
	testutil.AssertEqual(t, "telnet protocol", cfg.Listeners[0].Protocol, ListenerTypeTelnet)
	testutil.AssertEqual(t, "ssh protocol", cfg.Listeners[1].Protocol, ListenerTypeSSH)
	testutil.AssertEqual(t, "telnet addr", cfg.Listeners[0].Addr(), ":4000")
	testutil.AssertEqual(t, "ssh addr", cfg.Listeners[1].Addr(), "127.0.0.1:4022")
}

func TestListenerType_UnmarshalText(t *testing.T) {
	var lt ListenerType
	err := lt.UnmarshalText([]byte("gopher"))
	testutil.AssertErrorContains(t, err, "unknown listener type: gopher")
}

func TestConfig_Validate(t *testing.T) {
	world := WorldConfig{DataDir: "data", Variant: "Tiny"}

	tests := map[string]struct {
		cfg    Config
		expErr string
	}{
		"valid": {
			cfg: Config{
				World:     world,
				Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000}},
			},
		},
		"missing variant": {
			cfg: Config{
				World:     WorldConfig{DataDir: "data"},
				Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000}},
			},
			expErr: "world variant is required",
		},
		"missing data dir": {
			cfg: Config{
				World:     WorldConfig{Variant: "Tiny"},
				Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000}},
			},
			expErr: "world data_dir is required",
		},
		"no listeners": {
			cfg:    Config{World: world},
			expErr: "at least one listener is required",
		},
		"missing port": {
			cfg: Config{
				World:     world,
				Listeners: []ListenerConfig{{Protocol: ListenerTypeSSH}},
			},
			expErr: "port must be set to a positive integer",
		},
		"host key on telnet": {
			cfg: Config{
				World:     world,
				Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000, HostKeyPath: "key"}},
			},
			expErr: "host_key_path is only valid for ssh listeners",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildWorkers(t *testing.T) {
	cfg := &Config{
		World: WorldConfig{DataDir: filepath.Join("..", "..", "..", "data"), Variant: "Tiny"},
		Listeners: []ListenerConfig{
			{Protocol: ListenerTypeTelnet, Port: 4000},
			{Protocol: ListenerTypeSSH, Port: 4022},
		},
	}

	workers, err := BuildWorkers(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := workers["listeners"]; !ok {
		t.Errorf("expected a listeners worker, got %v", workers)
	}

	_, err = BuildWorkers("not a config")
	testutil.AssertErrorContains(t, err, "unable to cast config")

	cfg.World.Variant = "Missing"
	_, err = BuildWorkers(cfg)
	testutil.AssertErrorContains(t, err, `loading world "Missing"`)
}

func TestListenerConfig_HostKey(t *testing.T) {
	cl := &ListenerConfig{Protocol: ListenerTypeSSH, Port: 4022, HostKeyPath: filepath.Join(t.TempDir(), "missing")}
	_, err := cl.loadOrGenerateHostKey()
	testutil.AssertErrorContains(t, err, "reading host key")

	cl.HostKeyPath = ""
	signer, err := cl.loadOrGenerateHostKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "key type", signer.PublicKey().Type(), "ssh-ed25519")
}
