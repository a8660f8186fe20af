package services

import (
	portsrepo "github.com/paperfx/paperfx_app/internal/core/ports/repositories"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, sourceClients []portssvc.RateSourceClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One resolver instance is shared by rate queries and trade pricing so
	// both bridge through the same base currency.
	resolver := NewRateResolver(cfg.BaseCurrency)

	container.Currency = NewCurrencyService()
	container.User = NewUserService(repos.UserRepo, repos.PortfolioRepo)
	container.Rates = NewRateService(repos.SnapshotRepo, repos.HistoryRepo, resolver, cfg.RatesTTL)
	container.Updater = NewUpdaterService(sourceClients, repos.SnapshotRepo, repos.HistoryRepo)
	container.Trading = NewTradingService(repos.PortfolioRepo, repos.SnapshotRepo, resolver, cfg.BaseCurrency)

	container.TokenService = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
	_ portssvc.CurrencySvcFacade    = (*CurrencyService)(nil)
	_ portssvc.RateSvcFacade        = (*RateService)(nil)
	_ portssvc.RateUpdaterSvcFacade = (*UpdaterService)(nil)
	_ portssvc.TradingSvcFacade     = (*TradingService)(nil)
)
