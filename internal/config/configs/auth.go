package configs

// Auth configures bearer-token verification. Tokens are HS256 JWTs issued
// by the identity provider and carry the user id in the subject claim.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}
