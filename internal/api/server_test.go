package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zephyrtronium/wordcalc"
	"github.com/zephyrtronium/wordcalc/internal/config"
)

func testServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	cfg := config.Config{
		Addr:         ":0",
		APIKey:       apiKey,
		Prec:         64,
		MaxBodyBytes: 256,
		MaxTextRunes: 64,
	}
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := httptest.NewServer(NewServer(wordcalc.NewContext(), log, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body, token string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decoding response from %s: %v", path, err)
	}
	return resp.StatusCode, m
}

func TestHealth(t *testing.T) {
	srv := testServer(t, "key")
	resp, err := srv.Client().Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != `{"status":"ok"}` {
		t.Errorf("body = %s", b)
	}
}

func TestNumber(t *testing.T) {
	srv := testServer(t, "")
	code, m := post(t, srv, "/api/number", `{"text":"two and a quarter"}`, "")
	if code != http.StatusOK {
		t.Fatalf("status = %d: %v", code, m)
	}
	if m["value"] != 2.25 || m["result"] != "2.25" || m["text"] != "two and a quarter" {
		t.Errorf("wrong response %v", m)
	}
}

func TestEvaluate(t *testing.T) {
	srv := testServer(t, "")
	cases := []struct {
		name   string
		text   string
		norm   string
		result string
		value  any
	}{
		{"simple", "two pie", "two times pi", "6.283185307179586", 2 * math.Pi},
		{"division", "3 divided by sqrt twenty five", "3 divide sqrt twenty five", "0.6", 0.6},
		{"inf", "one over zero", "one divide zero", "+Inf", nil},
		{"nan", "zero over zero", "zero divide zero", "NaN", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body, _ := json.Marshal(textRequest{Text: c.text})
			code, m := post(t, srv, "/api/evaluate", string(body), "")
			if code != http.StatusOK {
				t.Fatalf("status = %d: %v", code, m)
			}
			if m["normalized"] != c.norm {
				t.Errorf("normalized = %v, want %q", m["normalized"], c.norm)
			}
			if m["result"] != c.result {
				t.Errorf("result = %v, want %q", m["result"], c.result)
			}
			if m["value"] != c.value {
				t.Errorf("value = %v, want %v", m["value"], c.value)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	srv := testServer(t, "")
	code, m := post(t, srv, "/api/normalize", `{"text":"nine squared divided by a third"}`, "")
	if code != http.StatusOK {
		t.Fatalf("status = %d: %v", code, m)
	}
	if m["normalized"] != "nine to two divide one third" {
		t.Errorf("normalized = %v", m["normalized"])
	}
}

func TestErrors(t *testing.T) {
	srv := testServer(t, "")
	cases := []struct {
		name string
		path string
		body string
		code int
		word any
		col  any
	}{
		{"parse", "/api/evaluate", `{"text":"five plus foo"}`, http.StatusUnprocessableEntity, "foo", 11.0},
		{"operand", "/api/evaluate", `{"text":"five plus"}`, http.StatusUnprocessableEntity, "plus", 6.0},
		{"number", "/api/number", `{"text":"twenty one hundred"}`, http.StatusUnprocessableEntity, "one", nil},
		{"empty", "/api/number", `{"text":""}`, http.StatusUnprocessableEntity, "", nil},
		{"json", "/api/evaluate", `{"text":`, http.StatusBadRequest, nil, nil},
		{"type", "/api/evaluate", `{"text":5}`, http.StatusBadRequest, nil, nil},
		{"long-text", "/api/evaluate", `{"text":"` + strings.Repeat("one ", 20) + `"}`, http.StatusRequestEntityTooLarge, nil, nil},
		{"big-body", "/api/evaluate", `{"text":"one"` + strings.Repeat(" ", 300) + `}`, http.StatusRequestEntityTooLarge, nil, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, m := post(t, srv, c.path, c.body, "")
			if code != c.code {
				t.Errorf("status = %d, want %d: %v", code, c.code, m)
			}
			if m["error"] == nil || m["error"] == "" {
				t.Errorf("no error message in %v", m)
			}
			if m["word"] != c.word {
				t.Errorf("word = %v, want %v", m["word"], c.word)
			}
			if m["col"] != c.col {
				t.Errorf("col = %v, want %v", m["col"], c.col)
			}
		})
	}
}

func TestAuth(t *testing.T) {
	srv := testServer(t, "secret")
	cases := []struct {
		name  string
		token string
		code  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "guess", http.StatusUnauthorized},
		{"right", "secret", http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, m := post(t, srv, "/api/evaluate", `{"text":"one plus one"}`, c.token)
			if code != c.code {
				t.Errorf("status = %d, want %d: %v", code, c.code, m)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	srv := testServer(t, "")
	resp, err := srv.Client().Post(srv.URL+"/api/evaluate", "text/plain", strings.NewReader(`{"text":"one"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
