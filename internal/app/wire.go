// Package app builds the dependency graph: storage, stores, evaluator,
// backend client, orchestrator, and guard, wired the same way for the CLI
// and for tests.
package app

import (
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"securechat/internal/api"
	"securechat/internal/auth"
	"securechat/internal/domain"
	"securechat/internal/export"
	"securechat/internal/guard"
	"securechat/internal/notify"
	"securechat/internal/session"
	"securechat/internal/store"
)

const (
	credentialsFile  = "credentials.json"
	sessionCacheFile = "session-cache.json"
)

// App bundles all stores, services, and clients for the CLI.
type App struct {
	Config   Config
	Log      *zap.Logger
	Notify   domain.Notifier
	Creds    *store.Credentials
	Session  *session.Evaluator
	API      *api.Client
	Auth     *auth.Service
	Guard    *guard.Guard
	Exporter *export.Exporter
}

// New constructs the dependency graph from cfg. The prompt is supplied by
// the caller because only the CLI knows how to talk to the user.
func New(cfg Config, prompt domain.Prompter, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	backing, err := store.OpenFileStorage(filepath.Join(cfg.Home, credentialsFile))
	if err != nil {
		return nil, err
	}
	scratch, err := store.OpenFileStorage(filepath.Join(cfg.Home, sessionCacheFile))
	if err != nil {
		return nil, err
	}

	creds := store.NewCredentials(backing)
	notifier := notify.NewTerminal(log)
	evaluator := session.NewEvaluator(creds)
	exporter := export.NewExporter(cfg.ExportDir, notifier, log)

	// The transport's 401 path clears the session on its own: an independent
	// expiry detector, parallel to the evaluator's proactive check.
	onUnauthorized := func() {
		if creds.IsAuthenticated() {
			_ = creds.ClearAll()
			notifier.Warning("Session expired or rejected by the server. Please log in again.")
		}
	}
	client := api.NewClient(cfg.ServerURL, creds, onUnauthorized, &http.Client{Timeout: cfg.Timeout()}, log)

	authSvc := auth.New(client, creds, scratch, exporter, prompt, log)
	g := guard.New(creds, evaluator, authSvc, log)

	return &App{
		Config:   cfg,
		Log:      log,
		Notify:   notifier,
		Creds:    creds,
		Session:  evaluator,
		API:      client,
		Auth:     authSvc,
		Guard:    g,
		Exporter: exporter,
	}, nil
}
