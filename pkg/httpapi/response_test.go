package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusNotFound, "Category not found by this ID")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body) != 1 || body["error"] != "Category not found by this ID" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"bolts"}`))
	if err := DecodeJSON(req, &dst); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if dst.Name != "bolts" {
		t.Errorf("expected bolts, got %s", dst.Name)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	if err := DecodeJSON(req, &dst); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		value  string
		want   uint
		wantOK bool
	}{
		{"12", 12, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"18446744073709551616", 0, false},
	}
	if strconv.IntSize == 64 {
		var above32 uint64 = 1 << 32
		tests = append(tests, struct {
			value  string
			want   uint
			wantOK bool
		}{"4294967296", uint(above32), true})
	}

	for _, tt := range tests {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.value})
		got, ok := PathID(req, "id")
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PathID(%q) = %d, %v; want %d, %v", tt.value, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSetRowsAffected(t *testing.T) {
	rec := httptest.NewRecorder()
	SetRowsAffected(rec, 0)
	if got := rec.Header().Get(HeaderRowsAffected); got != "0" {
		t.Errorf("expected 0, got %q", got)
	}
}
