package service

// VerificationTokenGenerator produces the opaque single-use tokens mailed to
// users for email verification. Tokens must be unguessable; the expiry window
// around them is owned by the account usecase, not the generator.
type VerificationTokenGenerator interface {
	// NewToken returns a cryptographically random opaque token.
	NewToken() (string, error)
}
