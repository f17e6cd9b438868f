package services

import "github.com/invoxa/invoxa/internal/pdf"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User      UserSvcFacade
	Token     TokenSvcFacade
	Client    ClientSvcFacade
	Company   CompanySvcFacade
	Invoice   InvoiceSvcFacade
	Currency  CurrencyRegistrySvc
	Converter CurrencyConverterSvc
	Dashboard DashboardSvcFacade
	Renderer  *pdf.Renderer
}
