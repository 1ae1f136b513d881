package version

import (
	"strings"
	"testing"
)

func TestVersionCarriesSemverCore(t *testing.T) {
	// The colored composition must still spell 0.1.0-dev once the SGR
	// escapes are removed.
	plain := stripEscapes(Version)
	if plain != "0.1.0-dev" {
		t.Fatalf("plain version = %q, want 0.1.0-dev", plain)
	}
	if !strings.HasSuffix(Version, "-dev") {
		t.Fatalf("the pre-release tag must stay uncolored: %q", Version)
	}
}

func TestBuildStampsDefaultEmpty(t *testing.T) {
	// GitCommit, GitMessage and BuildDate are only set via -ldflags.
	for name, v := range map[string]string{
		"GitCommit":  GitCommit,
		"GitMessage": GitMessage,
		"BuildDate":  BuildDate,
	} {
		if v != "" {
			t.Fatalf("%s should default to empty, got %q", name, v)
		}
	}
}

func stripEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
