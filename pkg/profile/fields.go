package profile

// Form field names. They are part of the editor's observable interface.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAddressLine1    = "addressLine1"
	FieldAddressLine2    = "addressLine2"
	FieldCity            = "city"
	FieldState           = "state"
	FieldZipCode         = "zipCode"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
	FieldConfirmPassword = "confirmPassword"
	FieldPictureURL      = "profilePictureUrl"
	FieldUsername        = "username"
)

// AllFields lists every field in the editable record
var AllFields = []string{
	FieldUsername,
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldAddressLine1,
	FieldAddressLine2,
	FieldCity,
	FieldState,
	FieldZipCode,
	FieldPictureURL,
	FieldCurrentPassword,
	FieldNewPassword,
	FieldConfirmPassword,
}

var credentialFields = []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmPassword}

// requiredFields are marked in the form but never block submission
var requiredFields = map[string]bool{
	FieldFirstName:    true,
	FieldLastName:     true,
	FieldEmail:        true,
	FieldPhone:        true,
	FieldAddressLine1: true,
	FieldCity:         true,
	FieldState:        true,
	FieldZipCode:      true,
}

// IsRequired reports whether the field carries a required marker
func IsRequired(name string) bool {
	return requiredFields[name]
}

// IsSecret reports whether the field holds a password
func IsSecret(name string) bool {
	for _, f := range credentialFields {
		if f == name {
			return true
		}
	}
	return false
}

// Label returns the human-readable label for a field
func Label(name string) string {
	switch name {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldAddressLine1:
		return "Address Line 1"
	case FieldAddressLine2:
		return "Address Line 2"
	case FieldCity:
		return "City"
	case FieldState:
		return "State"
	case FieldZipCode:
		return "ZIP Code"
	case FieldCurrentPassword:
		return "Current Password"
	case FieldNewPassword:
		return "New Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	case FieldPictureURL:
		return "Profile Picture"
	case FieldUsername:
		return "Username"
	}
	return name
}
