package entity

// StaffLoginData is extracted from a verified admin access token. Tokens are
// issued by the storefront's auth service, not by this one.
type StaffLoginData struct {
	ID    string
	Email string
	Role  string
}

const RoleAdmin = "admin"
