package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseNodes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "single node",
			input: "n1",
			want:  []string{"n1"},
		},
		{
			name:  "multiple nodes",
			input: "n1,n2,n3",
			want:  []string{"n1", "n2", "n3"},
		},
		{
			name:  "with addresses",
			input: "n1=127.0.0.1:50051,n2=127.0.0.1:50052",
			want:  []string{"n1=127.0.0.1:50051", "n2=127.0.0.1:50052"},
		},
		{
			name:  "with spaces",
			input: " n1 , n2 ",
			want:  []string{"n1", "n2"},
		},
		{
			name:    "empty ID",
			input:   "=127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "empty address",
			input:   "n1=",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNodes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseNodes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Errorf("ParseNodes() length = %d, want %d", len(got), len(tt.want))
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseNodes()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Nodes: []string{"n1", "n2"}, Replicas: 1000, Hash: "xxhash"},
		},
		{
			name: "valid murmur3",
			cfg:  Config{Nodes: []string{"n1"}, Replicas: 1, Hash: "murmur3"},
		},
		{
			name:    "no nodes",
			cfg:     Config{Replicas: 1000, Hash: "xxhash"},
			wantErr: true,
		},
		{
			name:    "zero replicas",
			cfg:     Config{Nodes: []string{"n1"}, Replicas: 0, Hash: "xxhash"},
			wantErr: true,
		},
		{
			name:    "unknown hash",
			cfg:     Config{Nodes: []string{"n1"}, Replicas: 1000, Hash: "md5"},
			wantErr: true,
		},
		{
			name:    "bad node entry",
			cfg:     Config{Nodes: []string{"n1="}, Replicas: 1000, Hash: "xxhash"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_RingNodes(t *testing.T) {
	cfg := Config{
		Nodes: []string{"n1=127.0.0.1:50051", "n2"},
	}

	nodes, err := cfg.RingNodes()
	if err != nil {
		t.Fatalf("RingNodes() error = %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("RingNodes() length = %d, want 2", len(nodes))
	}
	if nodes[0].ID != "n1" || nodes[0].Addr != "127.0.0.1:50051" {
		t.Errorf("RingNodes()[0] = %+v, want ID n1 with address", nodes[0])
	}
	if nodes[1].ID != "n2" || nodes[1].Addr != "" {
		t.Errorf("RingNodes()[1] = %+v, want bare ID n2", nodes[1])
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.toml")
	content := `
Nodes = ["n1", "n2=127.0.0.1:50052"]
Replicas = 500
Hash = "murmur3"
WordFile = "/usr/share/dict/words"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Nodes) != 2 {
		t.Errorf("Nodes length = %d, want 2", len(cfg.Nodes))
	}
	if cfg.Replicas != 500 {
		t.Errorf("Replicas = %d, want 500", cfg.Replicas)
	}
	if cfg.Hash != "murmur3" {
		t.Errorf("Hash = %q, want murmur3", cfg.Hash)
	}
	if cfg.WordFile != "/usr/share/dict/words" {
		t.Errorf("WordFile = %q", cfg.WordFile)
	}
}

func TestLoad_DefaultsPreserved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.toml")
	if err := os.WriteFile(path, []byte(`Nodes = ["n1"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Replicas != 1000 {
		t.Errorf("Replicas = %d, want default 1000", cfg.Replicas)
	}
	if cfg.Hash != "xxhash" {
		t.Errorf("Hash = %q, want default xxhash", cfg.Hash)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}
