package cli

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"selectorhub/internal/config"
	"selectorhub/internal/editor"
	"selectorhub/internal/eventbus"
	"selectorhub/internal/manager"
	"selectorhub/internal/schedule"
)

// session is a loaded document with its editor and selector manager
type session struct {
	log  *zap.Logger
	bus  eventbus.EventBus
	docs config.DocumentService
	ed   *editor.Editor
	mgr  *manager.Manager
	loop *schedule.Loop

	closeLog func() error
}

func (a *app) openSession() (*session, error) {
	log, closeLog, err := a.cfg.Logging.Prepare()
	if err != nil {
		return nil, err
	}

	s := &session{
		log:      log,
		bus:      eventbus.New(log.Named("bus")),
		loop:     schedule.NewLoop(),
		closeLog: closeLog,
	}
	s.docs = config.NewDocumentService(s.bus)
	s.ed = editor.New(s.bus, log.Named("editor"))
	s.mgr = manager.New(s.ed, a.cfg.ManagerConfig(),
		manager.WithScheduler(s.loop),
		manager.WithLogger(log.Named("manager")))

	doc, err := s.docs.Load(a.docPath)
	if err != nil {
		s.Close()
		return nil, err
	}
	if err := s.ed.Load(doc, s.mgr.Registry()); err != nil {
		for _, e := range multierr.Errors(err) {
			log.Warn("Component skipped", zap.String("document", a.docPath), zap.Error(e))
		}
	}
	log.Debug("Session opened",
		zap.String("document", a.docPath),
		zap.Int("selectors", s.mgr.Registry().Len()),
		zap.Int("components", len(s.ed.Components())))
	return s, nil
}

// Close destroys the manager and flushes the logger
func (s *session) Close() {
	s.mgr.Destroy()
	_ = s.log.Sync()
	if s.closeLog != nil {
		_ = s.closeLog()
	}
}
