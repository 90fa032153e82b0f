package linkedin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestResolveAuthorURN(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantURN  string
		wantErr  error
		wantFail bool
	}{
		{
			name:    "subject id maps to person URN",
			status:  http.StatusOK,
			body:    `{"sub":"abc123","name":"Test User"}`,
			wantURN: "urn:li:person:abc123",
		},
		{
			name:    "missing subject id",
			status:  http.StatusOK,
			body:    `{"name":"Test User"}`,
			wantErr: ErrUnresolvableIdentity,
		},
		{
			name:     "upstream failure",
			status:   http.StatusUnauthorized,
			body:     `{"message":"Invalid access token"}`,
			wantFail: true,
		},
		{
			name:     "malformed response",
			status:   http.StatusOK,
			body:     `not json`,
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v2/userinfo" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer tok" {
					t.Errorf("Authorization = %q, want %q", got, "Bearer tok")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			urn, err := testClient(srv.URL).ResolveAuthorURN(context.Background(), "tok")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantFail {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if urn != tt.wantURN {
				t.Errorf("urn = %q, want %q", urn, tt.wantURN)
			}
		})
	}
}

func TestProfileRelaysBody(t *testing.T) {
	const body = `{"sub":"42","given_name":"Ada","locale":{"country":"US"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Profile(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != body {
		t.Errorf("profile = %s, want %s", got, body)
	}
}
