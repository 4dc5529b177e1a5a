package security

import "github.com/alexedwards/argon2id"

// HashPassword hashes with a fresh random salt on every call, so two
// hashes of the same password never compare equal.
func HashPassword(pw string) (string, error) {
	return argon2id.CreateHash(pw, argon2id.DefaultParams)
}

func CheckPassword(hash, pw string) (bool, error) {
	return argon2id.ComparePasswordAndHash(pw, hash)
}
