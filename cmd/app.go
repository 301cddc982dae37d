package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/instrumentation"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/store"
	fstore "github.com/taskdeck/taskdeck/internal/store/firestore"
	"github.com/taskdeck/taskdeck/internal/store/memory"
	"github.com/taskdeck/taskdeck/internal/view"
)

// app bundles everything a command needs: the configured store, the
// signed-in user, and the instrumentation provider.
type app struct {
	cfg      *config.Config
	store    store.TaskStore
	identity auth.Identity
	user     auth.User
	sess     auth.Session
	provider *instrumentation.Provider
	audit    *instrumentation.AuditLogger

	logFile    *os.File
	closeStore func() error
}

// newApp wires the application together. With --demo it uses the
// in-memory store and a static identity; otherwise it signs in against
// Firebase and talks to Firestore.
func newApp(ctx context.Context) (*app, error) {
	// A .env file is optional
	_ = godotenv.Load()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &app{cfg: cfg}

	// The TUI owns stdout, so logs go to a file
	a.setupLogging()

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	a.provider, err = instrumentation.NewProvider(ctx, instrConfig)
	if err != nil {
		a.close(ctx)
		return nil, fmt.Errorf("creating instrumentation provider: %w", err)
	}
	a.audit = instrumentation.NewAuditLoggerWithConfig(slog.Default(), instrConfig.AuditLogging)

	if demoMode {
		err = a.wireDemo()
	} else {
		err = a.wireFirebase(ctx)
	}
	if err != nil {
		a.close(ctx)
		return nil, err
	}

	a.sess = a.user.Session()
	if metrics := a.provider.Metrics(); metrics != nil {
		metrics.IncrementActiveSessions(ctx)
	}
	return a, nil
}

// setupLogging routes slog to the configured log file. Failure to open
// the file is not fatal; logs are discarded.
func (a *app) setupLogging() {
	var w io.Writer = io.Discard
	if a.cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(a.cfg.Log.File), 0755); err == nil {
			if f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				a.logFile = f
				w = f
			}
		}
	}
	logging.Setup(w, debugMode)
}

// wireDemo sets up the in-memory store with a fixed local user.
func (a *app) wireDemo() error {
	a.identity = auth.NewStatic(auth.User{
		ID:          "demo",
		DisplayName: "Demo User",
		Email:       "demo@taskdeck.local",
	})

	user, err := a.identity.CurrentUser(context.Background())
	if err != nil {
		return err
	}
	a.user = user

	st := memory.New()
	a.store = st
	a.instrumentStore(instrumentation.StoreMemory)
	return nil
}

// wireFirebase signs in with the ID token from the environment and
// connects the Firestore-backed store. Both share one Firebase app.
func (a *app) wireFirebase(ctx context.Context) error {
	var opts []option.ClientOption
	if a.cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(a.cfg.Firebase.CredentialsFile))
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: a.cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return fmt.Errorf("initializing firebase: %w", err)
	}

	verifier, err := auth.NewVerifier(ctx, fbApp)
	if err != nil {
		return fmt.Errorf("initializing auth: %w", err)
	}
	a.identity = verifier

	idToken := os.Getenv("TASKDECK_ID_TOKEN")
	if idToken == "" {
		return fmt.Errorf("no credentials: set TASKDECK_ID_TOKEN to a Firebase ID token, or run with --demo")
	}

	authCtx, span := instrumentation.StartAuthSpan(ctx, "sign_in")
	user, err := verifier.SignIn(authCtx, idToken)
	metrics := a.provider.Metrics()
	if err != nil {
		instrumentation.SetSpanError(span, err)
		span.End()
		if metrics != nil {
			metrics.RecordSignIn(ctx, instrumentation.SignInResultFailure)
		}
		a.audit.LogAuthEvent("sign_in", "", false)
		return fmt.Errorf("signing in: %w", err)
	}
	span.SetAttributes(instrumentation.NewSpanAttributeBuilder().
		WithUserDomain(user.Email).
		Build()...)
	instrumentation.SetSpanSuccess(span)
	span.End()
	if metrics != nil {
		metrics.RecordSignInWithDomain(ctx, instrumentation.SignInResultSuccess, user.Email)
	}
	a.audit.LogAuthEvent("sign_in", user.Email, true)
	a.user = user

	connectCtx, span := instrumentation.StartSpan(ctx, "store.connect",
		instrumentation.NewSpanAttributeBuilder().
			WithStore(instrumentation.StoreFirestore).
			Build()...)
	st, err := fstore.NewFromApp(connectCtx, fbApp, fstore.WithCollection(a.cfg.Store.Collection))
	if err != nil {
		instrumentation.SetSpanError(span, err)
		span.End()
		return fmt.Errorf("connecting to firestore: %w", err)
	}
	instrumentation.SetSpanSuccess(span)
	span.End()
	a.store = st
	a.closeStore = st.Close
	a.instrumentStore(instrumentation.StoreFirestore)
	return nil
}

// instrumentStore wraps the store so every operation is traced, counted
// and timed, and every mutation leaves an audit record.
func (a *app) instrumentStore(name string) {
	cfg := store.InstrumentConfig{
		Store:     name,
		UserEmail: a.user.Email,
		Audit:     a.audit,
	}
	if metrics := a.provider.Metrics(); metrics != nil {
		metrics.SetStoreName(name)
		cfg.Recorder = metrics
	}
	a.store = store.WithInstrumentation(a.store, cfg)
}

// controller builds the view controller for the signed-in session.
func (a *app) controller() *view.Controller {
	return view.New(a.store, a.sess)
}

// close releases everything in reverse order of setup.
func (a *app) close(ctx context.Context) {
	if a.provider != nil {
		if metrics := a.provider.Metrics(); metrics != nil && a.sess.Valid() {
			metrics.DecrementActiveSessions(ctx)
		}
		if err := a.provider.Shutdown(ctx); err != nil {
			slog.Warn("instrumentation shutdown", logging.Err(err))
		}
	}
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			slog.Warn("closing store", logging.Err(err))
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
