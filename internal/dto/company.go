package dto

import "github.com/invoxa/invoxa/internal/core/domain"

// UpsertCompanyRequest is the payload for creating or replacing the user's
// company profile. DefaultCurrency drives dashboard normalization.
type UpsertCompanyRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=200"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone" binding:"omitempty,max=50"`
	Address         string `json:"address" binding:"omitempty,max=500"`
	Website         string `json:"website" binding:"omitempty,url"`
	DefaultCurrency string `json:"defaultCurrency" binding:"omitempty,currencycode"`
}

// CompanyResponse is the API representation of a company profile.
type CompanyResponse struct {
	CompanyID       string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	Website         string `json:"website,omitempty"`
	DefaultCurrency string `json:"defaultCurrency"`
}

// ToCompanyResponse converts a domain company to its API representation.
func ToCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:       company.CompanyID,
		Name:            company.Name,
		Email:           company.Email,
		Phone:           company.Phone,
		Address:         company.Address,
		Website:         company.Website,
		DefaultCurrency: company.DefaultCurrency,
	}
}
