package dto

// CreateContactRequest is the registration payload for a new care-team contact.
type CreateContactRequest struct {
	Name          string          `json:"name"`
	Relationship  string          `json:"relationship"`
	Role          string          `json:"role"`
	Organization  string          `json:"organization"`
	LicenseNumber string          `json:"license_number"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Notifications map[string]bool `json:"notifications"`
	Channels      *ChannelUpdate  `json:"channels"`
	Frequency     string          `json:"frequency"`
	DataAccess    string          `json:"data_access_level"`
}

// UpdateContactRequest carries a partial update. Absent fields are left
// untouched; system fields (id, user_id, created_at) are not representable
// here and so are dropped no matter what the caller sends.
type UpdateContactRequest struct {
	Name          *string         `json:"name"`
	Relationship  *string         `json:"relationship"`
	Role          *string         `json:"role"`
	Organization  *string         `json:"organization"`
	LicenseNumber *string         `json:"license_number"`
	Phone         *string         `json:"phone"`
	Email         *string         `json:"email"`
	Notifications map[string]bool `json:"notifications"`
	Channels      *ChannelUpdate  `json:"channels"`
	Frequency     *string         `json:"frequency"`
	DataAccess    *string         `json:"data_access_level"`
}

// ChannelUpdate overrides channel opt-ins; nil fields keep the current value.
type ChannelUpdate struct {
	SMS   *bool `json:"sms"`
	Email *bool `json:"email"`
}
