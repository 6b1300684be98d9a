package cli

import "testing"

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"graph.json", "graph.layout.json"},
		{"dir/diagram.json", "dir/diagram.layout.json"},
		{"noext", "noext.layout.json"},
	}
	for _, tt := range tests {
		if got := defaultOutputPath(tt.input); got != tt.want {
			t.Errorf("defaultOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCacheDirNotEmpty(t *testing.T) {
	if cacheDir() == "" {
		t.Error("cacheDir() = empty string")
	}
}
