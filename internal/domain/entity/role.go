package entity

// UserRole is the dashboard role of a user.
type UserRole string

// Role constants
const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

var UserRoles = []UserRole{RoleAdmin, RoleUser}

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// OfferableRoles returns the roles a viewer with the given role may assign.
func OfferableRoles(viewerRole UserRole) []UserRole {
	if viewerRole == RoleAdmin {
		return []UserRole{RoleUser, RoleAdmin}
	}
	return []UserRole{RoleUser}
}
