package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestDepositCmd(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/transactions/deposit" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"txn-1","kind":"DEPOSIT"}`))
	}))
	defer server.Close()

	root := newRootCmd()
	root.SetArgs([]string{"deposit", "acc-1", "500", "--url", server.URL})

	out := captureOutput(t, func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if received["account_id"] != "acc-1" || received["amount"] != "500" {
		t.Fatalf("unexpected request payload: %v", received)
	}
	if !strings.Contains(out, "txn-1") {
		t.Fatalf("expected transaction in output, got %q", out)
	}
}

func TestVerifyCmd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/acc-1/verify" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"account_id":"acc-1","consistent":true}`))
	}))
	defer server.Close()

	root := newRootCmd()
	root.SetArgs([]string{"verify", "acc-1", "--url", server.URL})

	out := captureOutput(t, func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, `"consistent": true`) {
		t.Fatalf("expected verdict in output, got %q", out)
	}
}

func TestWithdrawCmdErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"insufficient balance"}`))
	}))
	defer server.Close()

	root := newRootCmd()
	root.SetArgs([]string{"withdraw", "acc-1", "500", "--url", server.URL})
	root.SilenceUsage = true
	root.SilenceErrors = true

	captureOutput(t, func() {
		if err := root.Execute(); err == nil {
			t.Fatal("expected error for 422 response")
		}
	})
}
