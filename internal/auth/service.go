// Package auth composes the key generator, credential store, export utility
// and backend calls into the register, login, and logout flows.
package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"securechat/internal/api"
	"securechat/internal/crypto"
	"securechat/internal/domain"
	"securechat/internal/store"
)

// Backend is the slice of the API surface the auth flows consume.
type Backend interface {
	Register(ctx context.Context, req api.RegisterRequest) (api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error)
	Me(ctx context.Context) (domain.User, error)
	UploadX25519Key(ctx context.Context, publicKey string) error
	UploadEd25519Key(ctx context.Context, publicKey string) error
}

// Service orchestrates authentication and key lifecycle. Remote failures are
// folded into domain.Result; the error return carries only fatal conditions
// (entropy or storage failure), for which there is no degraded mode.
type Service struct {
	backend  Backend
	creds    *store.Credentials
	scratch  domain.Storage
	exporter domain.KeyExporter
	prompt   domain.Prompter
	log      *zap.Logger
}

// New wires an orchestrator. scratch is the secondary session-scoped storage
// also cleared on logout; it may be nil.
func New(backend Backend, creds *store.Credentials, scratch domain.Storage, exporter domain.KeyExporter, prompt domain.Prompter, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		backend:  backend,
		creds:    creds,
		scratch:  scratch,
		exporter: exporter,
		prompt:   prompt,
		log:      log,
	}
}

// Register creates an account, binds fresh public keys to it, and persists
// the session plus both private keys. Partial progress is not rolled back on
// failure: a token persisted before a later step fails stays persisted, and
// the account is recoverable by logging in again.
func (s *Service) Register(ctx context.Context, username, password, nickname string) (domain.Result, error) {
	res, err := s.backend.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
		Nickname: nickname,
	})
	if err != nil {
		return failure("Registration failed", err), nil
	}
	// Subsequent calls need the authenticated transport, so the token goes
	// into the store before anything else.
	if err := s.creds.SetToken(res.Token); err != nil {
		return domain.Result{}, err
	}

	me, err := s.backend.Me(ctx)
	if err != nil {
		return failure("Registration failed", err), nil
	}
	if err := s.creds.SetUser(&me); err != nil {
		return domain.Result{}, err
	}

	xPriv, xPub, err := crypto.GenerateX25519()
	if err != nil {
		return domain.Result{}, err
	}
	edPriv, edPub, err := crypto.GenerateEd25519()
	if err != nil {
		return domain.Result{}, err
	}

	if err := s.backend.UploadX25519Key(ctx, crypto.B64(xPub.Slice())); err != nil {
		return failure("Registration failed", err), nil
	}
	if err := s.backend.UploadEd25519Key(ctx, crypto.B64(edPub.Slice())); err != nil {
		return failure("Registration failed", err), nil
	}

	if err := s.creds.SetX25519PrivateKey(crypto.B64(xPriv.Slice())); err != nil {
		return domain.Result{}, err
	}
	if err := s.creds.SetEd25519PrivateKey(crypto.B64(edPriv.Slice())); err != nil {
		return domain.Result{}, err
	}

	s.log.Info("registered", zap.String("username", me.Username))
	return domain.Result{Success: true}, nil
}

// Login replaces the session token and profile. Private keys are left
// untouched: they persist across sessions on the same device, and a fresh
// device simply has none until its keys are restored.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Result, error) {
	res, err := s.backend.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return failure("Login failed", err), nil
	}
	if err := s.creds.SetToken(res.Token); err != nil {
		return domain.Result{}, err
	}

	me, err := s.backend.Me(ctx)
	if err != nil {
		return failure("Login failed", err), nil
	}
	if err := s.creds.SetUser(&me); err != nil {
		return domain.Result{}, err
	}

	s.log.Info("logged in", zap.String("username", me.Username))
	return domain.Result{Success: true}, nil
}

// Logout tears the session down. When interactive and private keys are held,
// the user chooses between exporting first, logging out directly, or
// aborting; an abort leaves every slot untouched and returns false. An export
// failure surfaces its own notification but never blocks the logout.
func (s *Service) Logout(ctx context.Context, interactive bool) (bool, error) {
	keys := s.creds.PrivateKeys()
	if interactive && !keys.Empty() {
		choice, err := s.prompt.ConfirmLogout(ctx)
		if err != nil {
			return false, err
		}
		switch choice {
		case domain.AbortLogout:
			return false, nil
		case domain.ExportAndLogout:
			label := ""
			if u, ok := s.creds.User(); ok {
				label = u.Username
			}
			s.exporter.ToFile(keys, label)
		}
	}

	if err := s.creds.ClearAll(); err != nil {
		return false, err
	}
	if s.scratch != nil {
		// Same logical entries may linger in session-scoped storage.
		for _, slot := range store.Slots() {
			_ = s.scratch.Delete(slot)
		}
	}
	s.log.Info("logged out", zap.Bool("interactive", interactive))
	return true, nil
}

// failure folds a backend error into a result, preferring the server's own
// message over the generic fallback.
func failure(fallback string, err error) domain.Result {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return domain.Result{Success: false, Message: apiErr.Message}
	}
	return domain.Result{Success: false, Message: fallback}
}
