package auth

import "golang.org/x/crypto/bcrypt"

const DefaultBcryptCost = 12

func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashIfChanged returns a fresh hash when incoming is a new plaintext
// password, and the existing hash unchanged when incoming is empty. Account
// mutation paths call this explicitly instead of relying on a save hook.
func HashIfChanged(existingHash, incoming string, cost int) (string, error) {
	if incoming == "" {
		return existingHash, nil
	}
	return HashPassword(incoming, cost)
}
