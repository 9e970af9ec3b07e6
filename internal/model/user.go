package model

// User is an admin account. Accounts are created by seeding only; the portal
// has no self-registration.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
}

// PublicUser is the user shape returned by the login endpoint.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
