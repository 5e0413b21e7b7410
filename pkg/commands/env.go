package commands

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/logging"
	"tableflip.dev/jed/pkg/store"
	"tableflip.dev/jed/pkg/templates"
)

// env is what every command needs before it can touch a document: the user
// configuration and a logger.
type env struct {
	ctx    context.Context
	config store.Config
	close  func() error
}

// newEnv loads the configuration. The TUI owns the terminal, so when tui is
// set the logger writes to the configured log file instead of stderr.
func newEnv(tui bool) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	level := logging.Level(lo.Verbose)

	var logger *log.Logger
	closer := func() error { return nil }
	if tui {
		logger, closer, err = logging.OpenFile(cfg.LogFile(), level)
		if err != nil {
			return nil, err
		}
	} else {
		logger = logging.New(os.Stderr, level)
	}
	logger.Debug("config loaded", "file", cfg.File())

	return &env{
		ctx:    logging.WithLogger(context.Background(), logger),
		config: cfg,
		close:  closer,
	}, nil
}

func (e *env) Context() context.Context { return e.ctx }

func (e *env) Close() {
	_ = e.close()
}

// Library returns the built-in templates plus the user's. A template store
// that cannot be opened leaves just the built-ins.
func (e *env) Library() *templates.Library {
	user, err := store.LoadTemplates(e.config)
	if err != nil {
		logging.FromContext(e.ctx).Warn("user templates unavailable", "err", err)
		return templates.NewLibrary(nil)
	}
	return templates.NewLibrary(user)
}

// Service builds the command layer without opening a document.
func (e *env) Service() *app.Service {
	return app.New(app.Options{
		Indent:    e.config.Indent(),
		Language:  e.config.Language(),
		Theme:     e.config.Theme(),
		Templates: e.Library(),
		Logger:    logging.FromContext(e.ctx),
	})
}

// Open builds the command layer and loads file.
func (e *env) Open(file string) (*app.Service, error) {
	svc := e.Service()
	p := logging.NewProgress(logging.FromContext(e.ctx))
	if err := svc.Open(file); err != nil {
		return nil, err
	}
	p.Done("opened " + file)
	return svc, nil
}
