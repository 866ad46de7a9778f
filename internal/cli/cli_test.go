package cli

import "testing"

func TestBuildOverrides(t *testing.T) {
	flagModel = ""
	if m := buildOverrides(); len(m) != 0 {
		t.Errorf("overrides = %v, want empty", m)
	}

	flagModel = "claude-opus-4-6"
	defer func() { flagModel = "" }()
	m := buildOverrides()
	if m["model"] != "claude-opus-4-6" {
		t.Errorf("overrides = %v", m)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "****"},
		{"short", "****"},
		{"sk-ant-api03-abcdefgh", "sk-ant...efgh"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestExitCodes(t *testing.T) {
	if ExitSuccess != 0 || ExitUsageError != 2 || ExitAuthError != 3 || ExitRuntimeError != 4 {
		t.Error("exit codes must stay stable for scripts")
	}
}
