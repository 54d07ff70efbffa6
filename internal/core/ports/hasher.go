package ports

// PasswordHasher is the one-way hashing collaborator. Plaintext never
// survives past a successful Hash call.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}
