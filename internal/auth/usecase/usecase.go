package usecase

// AuthUsecase validates bearer tokens issued by the identity provider.
// Login and token issuance happen outside this service.
type AuthUsecase interface {
	// ValidateToken verifies a JWT and returns the patient id it carries.
	ValidateToken(tokenString string) (string, error)
}
