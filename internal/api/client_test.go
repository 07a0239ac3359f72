package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"securechat/internal/api"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

func TestClient_InjectsBearerToken(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "1", "username": "alice"})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, staticToken("tok123"), nil, nil, nil)
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("me: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("expected a request ID header")
	}
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(api.AuthResponse{Token: "t"})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, staticToken(""), nil, nil, nil)
	if _, err := c.Login(context.Background(), api.LoginRequest{Username: "a", Password: "b"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if hadAuth {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestClient_UnauthorizedHookFires(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	fired := 0
	c := api.NewClient(srv.URL, staticToken("stale"), func() { fired++ }, nil, nil)

	_, err := c.Me(context.Background())
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("err = %v", err)
	}
	if fired != 1 {
		t.Fatalf("unauthorized hook fired %d times", fired)
	}
}

func TestClient_ExtractsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "username taken"})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, staticToken(""), nil, nil, nil)
	_, err := c.Register(context.Background(), api.RegisterRequest{Username: "a", Password: "b", Nickname: "A"})

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	}
	if apiErr.Message != "username taken" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestClient_EndpointPaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	c := api.NewClient(srv.URL, staticToken("tok"), nil, nil, nil)

	if err := c.UploadX25519Key(ctx, "pubX"); err != nil {
		t.Fatalf("upload x25519: %v", err)
	}
	if err := c.UploadEd25519Key(ctx, "pubEd"); err != nil {
		t.Fatalf("upload ed25519: %v", err)
	}
	if err := c.SendFriendRequest(ctx, "bob"); err != nil {
		t.Fatalf("friend request: %v", err)
	}

	want := []call{
		{http.MethodPut, "/api/users/me/x25519-key"},
		{http.MethodPut, "/api/users/me/ed25519-key"},
		{http.MethodPost, "/api/friendships/requests"},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}
