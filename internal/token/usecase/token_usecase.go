package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"recoverylink-backend/internal/token/domain"
	"recoverylink-backend/internal/token/repository"
	"recoverylink-backend/pkg/apperror"
	"recoverylink-backend/pkg/gcal"
)

// Authorizer is the slice of the calendar provider client the token
// lifecycle needs: consent URL and code exchange.
type Authorizer interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// tokenUsecase implements TokenUsecase interface
type tokenUsecase struct {
	tokenRepo  repository.TokenRepository
	authorizer Authorizer
}

// NewTokenUsecase creates a new instance of tokenUsecase
func NewTokenUsecase(tokenRepo repository.TokenRepository, authorizer Authorizer) TokenUsecase {
	return &tokenUsecase{tokenRepo: tokenRepo, authorizer: authorizer}
}

func (u *tokenUsecase) AuthURL(state string) string {
	return u.authorizer.AuthCodeURL(state)
}

func (u *tokenUsecase) ExchangeCode(ctx context.Context, patientID, code string) (*domain.CalendarToken, error) {
	if code == "" {
		return nil, &apperror.ValidationError{Field: "code"}
	}

	oauthToken, err := u.authorizer.Exchange(ctx, code)
	if err != nil {
		return nil, &apperror.TokenError{Reason: fmt.Sprintf("code exchange failed: %v", err)}
	}

	token := &domain.CalendarToken{
		UserID:      patientID,
		AccessToken: oauthToken.AccessToken,
		ExpiresAt:   oauthToken.Expiry,
		Scope:       gcal.Scope,
		StoredAt:    time.Now(),
	}

	if err := u.tokenRepo.Save(token); err != nil {
		return nil, fmt.Errorf("failed to store calendar token: %w", err)
	}

	return token, nil
}

func (u *tokenUsecase) Store(patientID, accessToken string, expiresIn int) (*domain.CalendarToken, error) {
	if accessToken == "" {
		return nil, &apperror.ValidationError{Field: "access_token"}
	}
	if expiresIn <= 0 {
		return nil, &apperror.ValidationError{Field: "expires_in"}
	}

	token := &domain.CalendarToken{
		UserID:      patientID,
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(time.Duration(expiresIn) * time.Second),
		Scope:       gcal.Scope,
		StoredAt:    time.Now(),
	}

	if err := u.tokenRepo.Save(token); err != nil {
		return nil, fmt.Errorf("failed to store calendar token: %w", err)
	}

	return token, nil
}

func (u *tokenUsecase) Status(patientID string) (bool, *time.Time, error) {
	token, err := u.tokenRepo.FindByUserID(patientID)
	if err != nil {
		return false, nil, fmt.Errorf("failed to load calendar token: %w", err)
	}
	if token == nil || token.Expired(time.Now()) {
		return false, nil, nil
	}
	return true, &token.ExpiresAt, nil
}

func (u *tokenUsecase) ValidAccessToken(patientID string) (string, error) {
	token, err := u.tokenRepo.FindByUserID(patientID)
	if err != nil {
		return "", fmt.Errorf("failed to load calendar token: %w", err)
	}
	if token == nil {
		return "", &apperror.TokenError{Reason: "no calendar authorization on file, please connect your calendar"}
	}
	if token.Expired(time.Now()) {
		return "", &apperror.TokenError{Reason: "calendar authorization expired, please reconnect your calendar"}
	}
	return token.AccessToken, nil
}

func (u *tokenUsecase) Revoke(patientID string) error {
	if err := u.tokenRepo.Delete(patientID); err != nil {
		return fmt.Errorf("failed to revoke calendar token: %w", err)
	}
	return nil
}
