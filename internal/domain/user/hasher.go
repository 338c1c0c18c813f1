package user

// PasswordHasher abstracts the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}
