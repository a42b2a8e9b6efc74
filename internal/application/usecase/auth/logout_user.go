// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// LogoutMessage is returned by every logout, whatever the token state.
const LogoutMessage = "Successfully logged out"

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of user logout.
// UserID is uuid.Nil when the token could not be attributed to an account.
type LogoutUserOutput struct {
	Message string
	UserID  uuid.UUID
}

// LogoutUserUseCase revokes a refresh token. Logging out is idempotent.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token. Unknown or expired tokens still log out.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	output := &LogoutUserOutput{Message: LogoutMessage}
	if input.RefreshToken == "" {
		return output, nil
	}

	if claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken); err == nil {
		output.UserID = claims.UserID
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Warn("Failed to revoke refresh token on logout",
			"user_id", output.UserID,
			"error", err,
		)
		return output, nil
	}

	slog.Info("User logged out", "user_id", output.UserID)
	return output, nil
}
