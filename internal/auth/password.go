package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an account password with the configured cost. Every
// provisioned account starts from the shared default password, so the hash is
// regenerated on the forced first-login change.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a login or old-password attempt against the
// stored hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
