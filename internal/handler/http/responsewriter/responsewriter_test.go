package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap_defaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want %d", w.StatusCode(), http.StatusOK)
	}
	if w.BytesWritten() != 0 {
		t.Errorf("BytesWritten() = %d, want 0", w.BytesWritten())
	}
}

func TestWriteHeader_firstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want %d", w.StatusCode(), http.StatusNotFound)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("recorder code = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestWrite_recordsBytesAndImplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Write([]byte(" world")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want %d", w.StatusCode(), http.StatusOK)
	}
	if w.BytesWritten() != len("hello world") {
		t.Errorf("BytesWritten() = %d, want %d", w.BytesWritten(), len("hello world"))
	}
	if rec.Body.String() != "hello world" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "hello world")
	}
}
