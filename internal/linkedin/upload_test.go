package linkedin

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecodeImageData(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{
			name:  "bare base64",
			input: encoded,
			want:  raw,
		},
		{
			name:  "data URI prefix stripped",
			input: "data:image/png;base64," + encoded,
			want:  raw,
		},
		{
			name:    "invalid base64",
			input:   "!!!not-base64!!!",
			wantErr: ErrInvalidImageData,
		},
		{
			name:    "data URI with invalid payload",
			input:   "data:image/png;base64,%%%",
			wantErr: ErrInvalidImageData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeImageData(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decoded = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUploadImage(t *testing.T) {
	raw := []byte("fake image bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	var uploaded []byte
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/v2/assets", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "registerUpload" {
			t.Errorf("missing action=registerUpload query, got %q", r.URL.RawQuery)
		}

		var req registerUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode register request: %v", err)
		}
		if req.RegisterUploadRequest.Owner != "urn:li:person:42" {
			t.Errorf("owner = %q, want urn:li:person:42", req.RegisterUploadRequest.Owner)
		}
		if len(req.RegisterUploadRequest.Recipes) != 1 || req.RegisterUploadRequest.Recipes[0] != feedshareImageRecipe {
			t.Errorf("recipes = %v, want [%s]", req.RegisterUploadRequest.Recipes, feedshareImageRecipe)
		}

		fmt.Fprintf(w, `{"value":{"uploadMechanism":{%q:{"uploadUrl":%q}},"asset":"urn:li:digitalmediaAsset:xyz"}}`,
			uploadMechanismKey, srv.URL+"/upload")
	})

	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("upload method = %s, want PUT", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", got)
		}
		body, _ := io.ReadAll(r.Body)
		uploaded = body
		w.WriteHeader(http.StatusCreated)
	})

	asset, err := testClient(srv.URL).UploadImage(context.Background(), "tok", "urn:li:person:42", encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset != "urn:li:digitalmediaAsset:xyz" {
		t.Errorf("asset = %q, want urn:li:digitalmediaAsset:xyz", asset)
	}
	if !bytes.Equal(uploaded, raw) {
		t.Errorf("uploaded bytes = %q, want %q", uploaded, raw)
	}
}

func TestUploadImageInvalidBase64SkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no outbound call expected for invalid base64")
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).UploadImage(context.Background(), "tok", "urn:li:person:42", "%%%")
	if !errors.Is(err, ErrInvalidImageData) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidImageData)
	}
}

func TestRegisterUploadMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no upload mechanism",
			body: `{"value":{"asset":"urn:li:digitalmediaAsset:xyz"}}`,
		},
		{
			name: "no asset",
			body: fmt.Sprintf(`{"value":{"uploadMechanism":{%q:{"uploadUrl":"http://example.com/u"}}}}`, uploadMechanismKey),
		},
		{
			name: "unexpected mechanism key",
			body: `{"value":{"uploadMechanism":{"some.other.Mechanism":{"uploadUrl":"http://example.com/u"}},"asset":"urn:li:digitalmediaAsset:xyz"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, _, err := testClient(srv.URL).registerUpload(context.Background(), "tok", "urn:li:person:42")
			if !errors.Is(err, ErrRegistrationResponse) {
				t.Fatalf("error = %v, want %v", err, ErrRegistrationResponse)
			}
		})
	}
}
