//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"solobill/internal"
	"solobill/internal/billing"
	"solobill/internal/providers"
	"solobill/internal/services"
	"solobill/internal/storage"
	"solobill/internal/structures"
)

func InitApp(flags *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		storage.NewCompressor,
		storage.NewAdapter,
		billing.NewRepository,
		services.NewLedgerService,
		services.NewViewsService,
		internal.NewApp,
	)

	return nil, nil
}
