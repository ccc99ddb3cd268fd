package internal

import (
	"solobill/internal/providers"
	"solobill/internal/services"
	"solobill/internal/storage"
	"solobill/internal/structures"
)

// App bundles the assembled core: config, logging, the record store and the
// view/metrics surfaces the CLI commands talk to.
type App struct {
	Conf    *structures.Config
	Logger  providers.Logger
	Service services.LedgerServiceInterface
	Views   services.ViewsServiceInterface
	Metrics providers.MetricsProviderInterface

	adapter storage.AdapterInterface
}

func NewApp(conf *structures.Config, logger providers.Logger, service services.LedgerServiceInterface, views services.ViewsServiceInterface, metrics providers.MetricsProviderInterface, adapter storage.AdapterInterface) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s (storage: %s)", conf.AppName, conf.Storage.Backend)

	if err := service.Load(); err != nil {
		return nil, err
	}

	return &App{
		Conf:    conf,
		Logger:  logger,
		Service: service,
		Views:   views,
		Metrics: metrics,
		adapter: adapter,
	}, nil
}

// Close writes the ledger out once more, then releases the storage adapter
// and log files. Mutations already persist as they happen; the extra write
// covers a store whose backing files were removed while the shell was open.
func (a *App) Close() error {
	if err := a.Service.Persist(); err != nil {
		a.Logger.Errorf(providers.TypeStore, "Final persist failed: %s", err)
	}
	err := a.adapter.Close()
	a.Logger.Infof(providers.TypeApp, "stopped")
	a.Logger.Close()
	return err
}
