package services

import (
	"github.com/invoxa/invoxa/internal/core/ports/providers"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/pdf"
	"github.com/invoxa/invoxa/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateProvider providers.ExchangeRateProvider, registry *pdf.Registry) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The registry and converter come first since rendering and the dashboard
	// depend on them.
	container.Currency = NewCurrencyService()
	container.Converter = NewCurrencyConverterService(rateProvider, cfg.RatesCacheTTL)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	container.Client = NewClientService(repos.ClientRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo)
	container.Dashboard = NewDashboardService(repos.DashboardRepo, repos.CompanyRepo, container.Converter, cfg.DefaultCurrency)
	container.Renderer = pdf.NewRenderer(registry, container.Currency)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.CurrencyRegistrySvc  = (*CurrencyService)(nil)
	_ portssvc.CurrencyConverterSvc = (*CurrencyConverterService)(nil)
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
	_ portssvc.TokenSvcFacade       = (*TokenService)(nil)
	_ portssvc.ClientSvcFacade      = (*ClientService)(nil)
	_ portssvc.CompanySvcFacade     = (*CompanyService)(nil)
	_ portssvc.InvoiceSvcFacade     = (*InvoiceService)(nil)
	_ portssvc.DashboardSvcFacade   = (*DashboardService)(nil)
)
