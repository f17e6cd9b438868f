package domain

// Company is the per-user issuing company profile printed on invoices.
// DefaultCurrency is the reporting currency for the user's dashboard.
type Company struct {
	CompanyID       string `json:"companyID"` // Primary Key (UUID)
	UserID          string `json:"userID"`    // Owning user, unique
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	Website         string `json:"website,omitempty"`
	DefaultCurrency string `json:"defaultCurrency"`
	AuditFields
}
