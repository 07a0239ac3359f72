package guard_test

import (
	"context"
	"testing"

	"securechat/internal/guard"
)

type fakeState bool

func (s fakeState) IsAuthenticated() bool { return bool(s) }

type fakeChecker bool

func (c fakeChecker) Expired() bool { return bool(c) }

type fakeLogout struct{ calls int }

func (f *fakeLogout) Logout(ctx context.Context, interactive bool) (bool, error) {
	if interactive {
		panic("guard must log out non-interactively")
	}
	f.calls++
	return true, nil
}

func TestCheck_ExpiredSessionLogsOutAndRedirects(t *testing.T) {
	ender := &fakeLogout{}
	g := guard.New(fakeState(true), fakeChecker(true), ender, nil)

	// Even a public route short-circuits to login when the session expired.
	d := g.Check(context.Background(), guard.Route{Name: "register", Protected: false})
	if d != guard.RedirectToLogin {
		t.Fatalf("decision = %v", d)
	}
	if ender.calls != 1 {
		t.Fatalf("logout calls = %d", ender.calls)
	}
}

func TestCheck_UnauthenticatedProtectedRedirects(t *testing.T) {
	ender := &fakeLogout{}
	g := guard.New(fakeState(false), fakeChecker(true), ender, nil)

	if d := g.Check(context.Background(), guard.Route{Name: "chat", Protected: true}); d != guard.RedirectToLogin {
		t.Fatalf("decision = %v", d)
	}
	if ender.calls != 0 {
		t.Fatal("no session to tear down")
	}
}

func TestCheck_PublicAlwaysAllowed(t *testing.T) {
	g := guard.New(fakeState(false), fakeChecker(true), &fakeLogout{}, nil)
	if d := g.Check(context.Background(), guard.Route{Name: "login"}); d != guard.Allow {
		t.Fatalf("decision = %v", d)
	}
}

func TestCheck_AuthenticatedValidAllowed(t *testing.T) {
	g := guard.New(fakeState(true), fakeChecker(false), &fakeLogout{}, nil)
	if d := g.Check(context.Background(), guard.Route{Name: "chat", Protected: true}); d != guard.Allow {
		t.Fatalf("decision = %v", d)
	}
}

func TestRequire(t *testing.T) {
	ctx := context.Background()

	if err := guard.New(fakeState(true), fakeChecker(false), &fakeLogout{}, nil).Require(ctx); err != nil {
		t.Fatalf("valid session: %v", err)
	}
	if err := guard.New(fakeState(false), fakeChecker(true), &fakeLogout{}, nil).Require(ctx); err != guard.ErrNotAuthenticated {
		t.Fatalf("err = %v", err)
	}
	ender := &fakeLogout{}
	if err := guard.New(fakeState(true), fakeChecker(true), ender, nil).Require(ctx); err != guard.ErrSessionExpired {
		t.Fatalf("err = %v", err)
	}
	if ender.calls != 1 {
		t.Fatalf("logout calls = %d", ender.calls)
	}
}
