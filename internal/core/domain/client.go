package domain

// Client is a billable party owned by a user.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (UUID)
	UserID   string `json:"userID"`   // Owning user
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	AuditFields
}
