package entity

// UserType distinguishes diners from restaurant owners. It doubles as the
// single role carried in access tokens.
type UserType string

const (
	// UserTypeNormal is a diner account.
	UserTypeNormal UserType = "NORMAL"
	// UserTypeRestaurantOwner may register and manage restaurants.
	UserTypeRestaurantOwner UserType = "RESTAURANT_OWNER"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeNormal, UserTypeRestaurantOwner:
		return true
	default:
		return false
	}
}
