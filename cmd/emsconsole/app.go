package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/jrsteele09/ems-console/api"
	"github.com/jrsteele09/ems-console/internal/config"
	"github.com/jrsteele09/ems-console/login"
	"github.com/jrsteele09/ems-console/rbac"
	"github.com/jrsteele09/ems-console/router"
	"github.com/jrsteele09/ems-console/session"
	"github.com/jrsteele09/ems-console/transport"
)

// app wires the session core and the resource clients: one store, one shared
// HTTP client carrying the bearer and invalidator transports, one guard and
// one gate consulted by every screen.
type app struct {
	cfg      config.Config
	log      zerolog.Logger
	store    *session.FileStore
	nav      *consoleNavigator
	pending  *router.PendingDestination
	guard    *router.Guard
	gate     *rbac.Gate
	flow     *login.Flow
	observer *session.Observer

	employees   *api.Employees
	departments *api.Departments
	admin       *api.Admin
	audit       *api.Audit
	analytics   *api.Analytics
}

func newApp() (*app, error) {
	log := newLogger()

	cfgPath, err := config.DefaultFilePath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	statePath := cfg.StateFile
	if statePath == "" {
		statePath, err = session.DefaultStatePath()
		if err != nil {
			return nil, err
		}
	}

	store := session.NewFileStore(statePath)
	nav := newConsoleNavigator(log)
	pending := router.NewPendingDestination()
	httpClient := transport.NewClient(store, nav, cfg.RequestTimeout, log)

	// The flow gets a plain client, not the shared invalidating one: a 401
	// from /authenticate means the submitted credentials were wrong, and it
	// must not tear down a live session or navigate anywhere.
	loginClient := &http.Client{Timeout: cfg.RequestTimeout}
	flow, err := login.NewFlow(cfg.APIBaseURL, store, nav, pending, loginClient, log)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewClient(cfg.APIBaseURL, httpClient)

	return &app{
		cfg:         cfg,
		log:         log,
		store:       store,
		nav:         nav,
		pending:     pending,
		guard:       router.NewGuard(store, nav, pending, log),
		gate:        rbac.NewGate(store),
		flow:        flow,
		observer:    session.NewObserver(store, cfg.PollInterval, log),
		employees:   api.NewEmployees(apiClient),
		departments: api.NewDepartments(apiClient),
		admin:       api.NewAdmin(apiClient),
		audit:       api.NewAudit(apiClient),
		analytics:   api.NewAnalytics(apiClient),
	}, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if v := os.Getenv("EMS_LOG_LEVEL"); v != "" {
		if parsed, err := zerolog.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
