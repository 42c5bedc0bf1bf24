package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gedstore/internal/config"
	"gedstore/internal/logging"
	"gedstore/internal/metrics"
	"gedstore/internal/repository/filestore"
	"gedstore/internal/repository/sqlite"
	"gedstore/internal/service"
)

// app is the state shared by the commands of one invocation
type app struct {
	flags   flags
	cfg     *config.Config
	cfgPath string
	log     *logging.Logger
	metrics *metrics.Recorder
	errOut  io.Writer

	store  *filestore.Store
	mirror *sqlite.Mirror
	uow    *service.UnitOfWork
}

// setup loads the config, applies flags and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.flags.config != "" {
		a.cfg, a.cfgPath, err = config.LoadFromPath(a.flags.config)
	} else {
		a.cfg, a.cfgPath, err = config.Load()
	}
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("document") {
		a.cfg.Document.Path = a.flags.document
	}
	if f.Changed("log-level") {
		a.cfg.Log.Level = a.flags.logLevel
	}
	if f.Changed("log-format") {
		a.cfg.Log.Format = a.flags.logFormat
	}
	if f.Changed("mirror") {
		a.cfg.Mirror.SQLitePath = a.flags.mirror
	}
	if f.Changed("metrics") {
		a.cfg.Metrics.Enabled = a.flags.metrics
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log, err = logging.New().FromWriter(cmd.ErrOrStderr()).FromConfig(a.cfg.Log).Make()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	if a.cfg.Metrics.Enabled {
		a.metrics = metrics.NewRecorder()
	}
	a.errOut = cmd.ErrOrStderr()

	a.log.Debug().Str("config", a.cfgPath).Str("document", a.cfg.Document.Path).Msg("configuration loaded")
	return nil
}

// open loads the document and, when configured, the mirror
func (a *app) open() (*service.UnitOfWork, error) {
	store, err := filestore.Open(a.cfg.Document.Path,
		filestore.WithLogger(a.log.Logger),
		filestore.WithMetrics(a.metrics),
	)
	if err != nil {
		return nil, err
	}
	a.store = store

	opts := []service.Option{service.WithLogger(a.log.Logger)}
	if a.cfg.Mirror.SQLitePath != "" {
		if a.mirror == nil {
			a.mirror, err = sqlite.New(a.cfg.Mirror.SQLitePath)
			if err != nil {
				return nil, fmt.Errorf("open mirror: %w", err)
			}
		}
		opts = append(opts, service.WithMirror(a.mirror))
	}

	a.uow, err = service.NewUnitOfWork(store, opts...)
	if err != nil {
		return nil, err
	}
	return a.uow, nil
}

// close prints metrics and releases the mirror and log file
func (a *app) close() error {
	if a.metrics != nil && a.errOut != nil {
		lines, err := a.metrics.Summary()
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(a.errOut, line)
		}
	}
	if a.mirror != nil {
		if err := a.mirror.Close(); err != nil {
			return err
		}
		a.mirror = nil
	}
	if a.log != nil {
		return a.log.Close()
	}
	return nil
}
