package auth_test

import (
	"context"
	"errors"
	"testing"

	"securechat/internal/api"
	"securechat/internal/auth"
	"securechat/internal/crypto"
	"securechat/internal/domain"
	"securechat/internal/store"
)

type fakeBackend struct {
	user domain.User

	registerErr, loginErr, meErr error
	uploadXErr, uploadEdErr      error

	uploadedX, uploadedEd string
}

func (f *fakeBackend) Register(ctx context.Context, req api.RegisterRequest) (api.AuthResponse, error) {
	if f.registerErr != nil {
		return api.AuthResponse{}, f.registerErr
	}
	return api.AuthResponse{Token: "reg-token"}, nil
}

func (f *fakeBackend) Login(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error) {
	if f.loginErr != nil {
		return api.AuthResponse{}, f.loginErr
	}
	return api.AuthResponse{Token: "login-token"}, nil
}

func (f *fakeBackend) Me(ctx context.Context) (domain.User, error) {
	if f.meErr != nil {
		return domain.User{}, f.meErr
	}
	return f.user, nil
}

func (f *fakeBackend) UploadX25519Key(ctx context.Context, pub string) error {
	if f.uploadXErr != nil {
		return f.uploadXErr
	}
	f.uploadedX = pub
	return nil
}

func (f *fakeBackend) UploadEd25519Key(ctx context.Context, pub string) error {
	if f.uploadEdErr != nil {
		return f.uploadEdErr
	}
	f.uploadedEd = pub
	return nil
}

type scriptedPrompt struct {
	choice domain.LogoutChoice
	err    error
	asked  int
}

func (p *scriptedPrompt) ConfirmLogout(ctx context.Context) (domain.LogoutChoice, error) {
	p.asked++
	return p.choice, p.err
}

type fakeExporter struct {
	fileCalls []string // labels
	fileKeys  []domain.PrivateKeys
	fileOK    bool
}

func (f *fakeExporter) ToFile(keys domain.PrivateKeys, label string) bool {
	f.fileCalls = append(f.fileCalls, label)
	f.fileKeys = append(f.fileKeys, keys)
	return f.fileOK
}

func (f *fakeExporter) ToClipboard(keys domain.PrivateKeys) bool { return false }

func newService(backend auth.Backend, prompt domain.Prompter, exporter domain.KeyExporter) (*auth.Service, *store.Credentials, *store.MemoryStorage) {
	creds := store.NewCredentials(store.NewMemoryStorage())
	scratch := store.NewMemoryStorage()
	return auth.New(backend, creds, scratch, exporter, prompt, nil), creds, scratch
}

func TestRegister_PersistsAllFourSlots(t *testing.T) {
	backend := &fakeBackend{user: domain.User{ID: "1", Username: "alice", Nickname: "Alice"}}
	svc, creds, _ := newService(backend, &scriptedPrompt{}, &fakeExporter{})

	res, err := svc.Register(context.Background(), "alice", "pw", "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !res.Success {
		t.Fatalf("register failed: %q", res.Message)
	}

	if tok, ok := creds.Token(); !ok || tok != "reg-token" {
		t.Fatalf("token = %q, %v", tok, ok)
	}
	if u, ok := creds.User(); !ok || u.Username != "alice" {
		t.Fatalf("user = %+v, %v", u, ok)
	}
	keys := creds.PrivateKeys()
	if keys.X25519PrivateKey == "" || keys.Ed25519PrivateKey == "" {
		t.Fatalf("private keys missing after register: %+v", keys)
	}
	if _, err := crypto.UnB64(keys.X25519PrivateKey); err != nil {
		t.Fatalf("x25519 private key not base64: %v", err)
	}
	if backend.uploadedX == "" || backend.uploadedEd == "" {
		t.Fatal("public keys were not uploaded")
	}
}

func TestRegister_BackendFailureYieldsResult(t *testing.T) {
	backend := &fakeBackend{registerErr: &api.Error{Status: 400, Message: "username taken"}}
	svc, creds, _ := newService(backend, &scriptedPrompt{}, &fakeExporter{})

	res, err := svc.Register(context.Background(), "alice", "pw", "Alice")
	if err != nil {
		t.Fatalf("remote failure must not surface as error: %v", err)
	}
	if res.Success || res.Message != "username taken" {
		t.Fatalf("res = %+v", res)
	}
	if creds.IsAuthenticated() {
		t.Fatal("nothing should be persisted when register itself fails")
	}
}

// A failure after the token is persisted leaves partial state behind; the
// flow does not roll back.
func TestRegister_UploadFailureKeepsPartialProgress(t *testing.T) {
	backend := &fakeBackend{
		user:       domain.User{ID: "1", Username: "alice"},
		uploadXErr: &api.Error{Status: 500},
	}
	svc, creds, _ := newService(backend, &scriptedPrompt{}, &fakeExporter{})

	res, err := svc.Register(context.Background(), "alice", "pw", "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Success {
		t.Fatal("register must report failure")
	}
	if !creds.IsAuthenticated() {
		t.Fatal("token and user persisted before the failure must remain")
	}
	if keys := creds.PrivateKeys(); !keys.Empty() {
		t.Fatalf("private keys must not be persisted after upload failure: %+v", keys)
	}
}

func TestLogin_NeverTouchesKeySlots(t *testing.T) {
	backend := &fakeBackend{user: domain.User{ID: "1", Username: "alice"}}
	svc, creds, _ := newService(backend, &scriptedPrompt{}, &fakeExporter{})

	if err := creds.SetX25519PrivateKey("existing-x"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := creds.SetEd25519PrivateKey("existing-ed"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := svc.Login(context.Background(), "alice", "pw")
	if err != nil || !res.Success {
		t.Fatalf("login: %v %+v", err, res)
	}

	keys := creds.PrivateKeys()
	if keys.X25519PrivateKey != "existing-x" || keys.Ed25519PrivateKey != "existing-ed" {
		t.Fatalf("login modified key slots: %+v", keys)
	}
}

func TestLogin_FreshDeviceStaysKeyless(t *testing.T) {
	backend := &fakeBackend{user: domain.User{ID: "1", Username: "alice"}}
	svc, creds, _ := newService(backend, &scriptedPrompt{}, &fakeExporter{})

	res, err := svc.Login(context.Background(), "alice", "pw")
	if err != nil || !res.Success {
		t.Fatalf("login: %v %+v", err, res)
	}
	if !creds.IsAuthenticated() {
		t.Fatal("login must authenticate")
	}
	if keys := creds.PrivateKeys(); !keys.Empty() {
		t.Fatalf("fresh device must stay keyless: %+v", keys)
	}
}

func TestLogin_FailureMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &api.Error{Status: 401, Message: "bad credentials"}, "bad credentials"},
		{"no message", &api.Error{Status: 500}, "Login failed"},
		{"network error", errors.New("dial tcp: connection refused"), "Login failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newService(&fakeBackend{loginErr: tc.err}, &scriptedPrompt{}, &fakeExporter{})
			res, err := svc.Login(context.Background(), "alice", "pw")
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if res.Success || res.Message != tc.want {
				t.Fatalf("res = %+v, want message %q", res, tc.want)
			}
		})
	}
}

func seedSession(t *testing.T, creds *store.Credentials) {
	t.Helper()
	if err := creds.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	if err := creds.SetUser(&domain.User{ID: "1", Username: "alice"}); err != nil {
		t.Fatal(err)
	}
	if err := creds.SetX25519PrivateKey("xpriv"); err != nil {
		t.Fatal(err)
	}
	if err := creds.SetEd25519PrivateKey("edpriv"); err != nil {
		t.Fatal(err)
	}
}

func TestLogout_AbortLeavesStoreUntouched(t *testing.T) {
	prompt := &scriptedPrompt{choice: domain.AbortLogout}
	svc, creds, _ := newService(&fakeBackend{}, prompt, &fakeExporter{})
	seedSession(t, creds)

	done, err := svc.Logout(context.Background(), true)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if done {
		t.Fatal("aborted logout must return false")
	}
	if prompt.asked != 1 {
		t.Fatalf("prompt asked %d times", prompt.asked)
	}
	if !creds.IsAuthenticated() {
		t.Fatal("abort must not modify state")
	}
	if keys := creds.PrivateKeys(); keys.Empty() {
		t.Fatal("abort must not clear keys")
	}
}

func TestLogout_ExportThenLogout(t *testing.T) {
	exporter := &fakeExporter{fileOK: false} // export failure must not block logout
	prompt := &scriptedPrompt{choice: domain.ExportAndLogout}
	svc, creds, _ := newService(&fakeBackend{}, prompt, exporter)
	seedSession(t, creds)

	done, err := svc.Logout(context.Background(), true)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !done {
		t.Fatal("logout must complete")
	}
	if len(exporter.fileCalls) != 1 || exporter.fileCalls[0] != "alice" {
		t.Fatalf("export labels = %v", exporter.fileCalls)
	}
	want := domain.PrivateKeys{X25519PrivateKey: "xpriv", Ed25519PrivateKey: "edpriv"}
	if exporter.fileKeys[0] != want {
		t.Fatalf("exported keys = %+v", exporter.fileKeys[0])
	}
	if creds.IsAuthenticated() {
		t.Fatal("slots must be cleared after logout")
	}
	if keys := creds.PrivateKeys(); !keys.Empty() {
		t.Fatalf("keys survived logout: %+v", keys)
	}
}

func TestLogout_LogoutOnlySkipsExport(t *testing.T) {
	exporter := &fakeExporter{fileOK: true}
	svc, creds, _ := newService(&fakeBackend{}, &scriptedPrompt{choice: domain.LogoutOnly}, exporter)
	seedSession(t, creds)

	done, err := svc.Logout(context.Background(), true)
	if err != nil || !done {
		t.Fatalf("logout: %v %v", done, err)
	}
	if len(exporter.fileCalls) != 0 {
		t.Fatalf("export must not run: %v", exporter.fileCalls)
	}
	if creds.IsAuthenticated() {
		t.Fatal("slots must be cleared")
	}
}

func TestLogout_NonInteractiveSkipsPrompt(t *testing.T) {
	prompt := &scriptedPrompt{choice: domain.AbortLogout}
	svc, creds, scratch := newService(&fakeBackend{}, prompt, &fakeExporter{})
	seedSession(t, creds)
	if err := scratch.Set(store.SlotToken, "stale"); err != nil {
		t.Fatal(err)
	}

	done, err := svc.Logout(context.Background(), false)
	if err != nil || !done {
		t.Fatalf("logout: %v %v", done, err)
	}
	if prompt.asked != 0 {
		t.Fatal("non-interactive logout must not prompt")
	}
	if _, ok := scratch.Get(store.SlotToken); ok {
		t.Fatal("scratch storage not cleared on logout")
	}
}

func TestLogout_NoKeysSkipsPrompt(t *testing.T) {
	prompt := &scriptedPrompt{choice: domain.AbortLogout}
	svc, creds, _ := newService(&fakeBackend{}, prompt, &fakeExporter{})
	if err := creds.SetToken("tok"); err != nil {
		t.Fatal(err)
	}

	done, err := svc.Logout(context.Background(), true)
	if err != nil || !done {
		t.Fatalf("logout: %v %v", done, err)
	}
	if prompt.asked != 0 {
		t.Fatal("prompt must be skipped when no private keys are held")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	svc, creds, _ := newService(&fakeBackend{}, &scriptedPrompt{choice: domain.LogoutOnly}, &fakeExporter{})
	seedSession(t, creds)

	for i := 0; i < 2; i++ {
		done, err := svc.Logout(context.Background(), false)
		if err != nil || !done {
			t.Fatalf("logout pass %d: %v %v", i+1, done, err)
		}
	}
	if creds.IsAuthenticated() || !creds.PrivateKeys().Empty() {
		t.Fatal("double logout must leave the same absent state")
	}
}
