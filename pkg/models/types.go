package models

// ProfileRecord is the account store's view of a user profile.
// The editor treats it as a read-only seed.
type ProfileRecord struct {
	Username          string `yaml:"username" json:"username"`
	FirstName         string `yaml:"first_name" json:"firstName"`
	LastName          string `yaml:"last_name" json:"lastName"`
	Email             string `yaml:"email" json:"email"`
	Phone             string `yaml:"phone" json:"phone"`
	AddressLine1      string `yaml:"address_line1" json:"addressLine1"`
	AddressLine2      string `yaml:"address_line2" json:"addressLine2"`
	City              string `yaml:"city" json:"city"`
	State             string `yaml:"state" json:"state"`
	ZipCode           string `yaml:"zip_code" json:"zipCode"`
	ProfilePictureURL string `yaml:"profile_picture_url" json:"profilePictureUrl"`
}

// DisplayName returns "First Last", falling back to the username
func (p ProfileRecord) DisplayName() string {
	name := p.FirstName
	if p.LastName != "" {
		if name != "" {
			name += " "
		}
		name += p.LastName
	}
	if name == "" {
		return p.Username
	}
	return name
}

// SampleProfile is written by `init` so a fresh project has something to edit
func SampleProfile() *ProfileRecord {
	return &ProfileRecord{
		Username:     "jdoe",
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane.doe@example.com",
		Phone:        "+1 555 010 0199",
		AddressLine1: "221 Market Street",
		City:         "San Francisco",
		State:        "CA",
		ZipCode:      "94105",
	}
}
