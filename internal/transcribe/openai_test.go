package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenAITranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":" the mitochondria is the powerhouse "}`))
	}))
	defer server.Close()

	audioPath := filepath.Join(t.TempDir(), "lec1.mp3")
	if err := os.WriteFile(audioPath, []byte("ID3"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := NewOpenAI("test-key", server.URL+"/v1")
	text, err := engine.Transcribe(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != " the mitochondria is the powerhouse " {
		t.Errorf("text = %q", text)
	}
}

func TestOpenAITranscribeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	audioPath := filepath.Join(t.TempDir(), "lec1.mp3")
	os.WriteFile(audioPath, []byte("ID3"), 0o644)

	_, err := NewOpenAI("bad", server.URL+"/v1").Transcribe(context.Background(), audioPath)
	if err == nil {
		t.Fatal("expected error")
	}
}
