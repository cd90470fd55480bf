package authenticator

// TokenEngine signs and verifies a typed payload embedded in a JWT.
type TokenEngine[T any] interface {
	Generate(sub string, obj T) (string, error)
	Verify(token string) (T, error)
}
