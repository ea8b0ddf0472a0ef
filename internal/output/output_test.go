package output

import (
	"bytes"
	"testing"
)

func TestSetupCheck(t *testing.T) {
	tests := []struct {
		name   string
		ok     bool
		detail string
		want   string
	}{
		{"ffmpeg", true, "installed", "  ✅ ffmpeg: installed\n"},
		{"Whisper model", false, "missing models/ggml-base.bin", "  ❌ Whisper model: missing models/ggml-base.bin\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		NewFormatter(&buf).SetupCheck(tt.name, tt.ok, tt.detail)
		if buf.String() != tt.want {
			t.Errorf("SetupCheck(%q) = %q, want %q", tt.name, buf.String(), tt.want)
		}
	}
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)
	f.Success("ready")
	f.Warning("missing")
	f.Error("boom")

	want := "✅ ready\n⚠️  missing\n❌ boom\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
