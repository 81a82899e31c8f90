package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name           string
		code           int
		data           any
		expectedCode   int
		expectedBody   string
		expectedHeader string
	}{
		{
			name:           "success with map",
			code:           http.StatusOK,
			data:           map[string]string{"message": "success"},
			expectedCode:   http.StatusOK,
			expectedBody:   `{"message":"success"}`,
			expectedHeader: "application/json",
		},
		{
			name:           "created with struct",
			code:           http.StatusCreated,
			data:           struct{ ID int }{ID: 123},
			expectedCode:   http.StatusCreated,
			expectedBody:   `{"ID":123}`,
			expectedHeader: "application/json",
		},
		{
			name:           "no content with nil",
			code:           http.StatusNoContent,
			data:           nil,
			expectedCode:   http.StatusNoContent,
			expectedBody:   "",
			expectedHeader: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.expectedCode {
				t.Errorf("Code = %v, want %v", w.Code, tt.expectedCode)
			}

			if ct := w.Header().Get("Content-Type"); ct != tt.expectedHeader {
				t.Errorf("Content-Type = %v, want %v", ct, tt.expectedHeader)
			}

			body := strings.TrimSpace(w.Body.String())
			if tt.expectedBody != "" && body != tt.expectedBody {
				t.Errorf("Body = %v, want %v", body, tt.expectedBody)
			}
		})
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, errors.New("subject not found"))

	if w.Code != http.StatusNotFound {
		t.Errorf("Code = %v, want %v", w.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["error"] != "subject not found" {
		t.Errorf("Error message = %v, want %v", body["error"], "subject not found")
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "nil error writes nothing",
			code:         http.StatusBadRequest,
			err:          nil,
			expectedCode: 0,
			expectedMsg:  "",
		},
		{
			name:         "validation error passes through",
			code:         http.StatusBadRequest,
			err:          errors.New("name_en is required"),
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "name_en is required",
		},
		{
			name:         "not found passes through",
			code:         http.StatusNotFound,
			err:          errors.New("subject 42: entity not found"),
			expectedCode: http.StatusNotFound,
			expectedMsg:  "subject 42: entity not found",
		},
		{
			name:         "capacity error passes through",
			code:         http.StatusConflict,
			err:          errors.New("twitter watch list capacity exceeded: maximum 10 records allowed"),
			expectedCode: http.StatusConflict,
			expectedMsg:  "twitter watch list capacity exceeded: maximum 10 records allowed",
		},
		{
			name:         "storage error masked",
			code:         http.StatusInternalServerError,
			err:          errors.New("database is locked"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "internal server error",
		},
		{
			name:         "5xx always masked even with safe keyword",
			code:         http.StatusInternalServerError,
			err:          errors.New("some error with required keyword"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SafeError(w, tt.code, tt.err)

			if tt.err == nil {
				if w.Body.Len() != 0 {
					t.Errorf("Expected no body for nil error, but got: %v", w.Body.String())
				}
				return
			}

			if w.Code != tt.expectedCode {
				t.Errorf("Code = %v, want %v", w.Code, tt.expectedCode)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body["error"] != tt.expectedMsg {
				t.Errorf("Error message = %v, want %v", body["error"], tt.expectedMsg)
			}
		})
	}
}
