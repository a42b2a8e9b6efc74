package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

type memoryUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *memoryUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

// plainPasswords stores passwords with a prefix so tests stay fast.
type plainPasswords struct{}

func (plainPasswords) HashPassword(password string) (string, error) { return "hashed:" + password, nil }

func (plainPasswords) VerifyPassword(hashed, password string) error {
	if hashed != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func (plainPasswords) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type memoryTokens struct {
	revoked map[string]bool
	issued  int
}

func (m *memoryTokens) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string, _ bool) (*adapter.TokenPair, error) {
	m.issued++
	return &adapter.TokenPair{
		AccessToken:  "access-" + userID.String(),
		RefreshToken: "refresh-" + userID.String() + "-" + string(rune('a'+m.issued)),
	}, nil
}

func (m *memoryTokens) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (m *memoryTokens) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if len(token) < len("refresh-")+36 {
		return nil, domainerror.ErrInvalidToken
	}
	id, err := uuid.Parse(token[len("refresh-") : len("refresh-")+36])
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: id}, nil
}

func (m *memoryTokens) InvalidateRefreshToken(_ context.Context, token string) error {
	m.revoked[token] = true
	return nil
}

func (m *memoryTokens) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !m.revoked[token], nil
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserRepo()
	tokens := &memoryTokens{revoked: map[string]bool{}}
	register := NewRegisterUserUseCase(users, plainPasswords{}, tokens)
	login := NewLoginUserUseCase(users, plainPasswords{}, tokens)

	registered, err := register.Execute(ctx, RegisterUserInput{
		Email:            " Ana@Example.com ",
		Name:             "Ana",
		Password:         "wardrobe123",
		Location:         "Lisbon",
		StylePreferences: []string{"casual", " ", "minimal"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registered.User.Email != "ana@example.com" {
		t.Errorf("expected normalized email, got %q", registered.User.Email)
	}
	if len(registered.User.StylePreferences) != 2 {
		t.Errorf("expected 2 preferences, got %v", registered.User.StylePreferences)
	}

	tests := []struct {
		name     string
		input    RegisterUserInput
		expected domainerror.AuthErrorCode
	}{
		{"duplicate email", RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "wardrobe123"}, domainerror.ErrCodeEmailExists},
		{"invalid email", RegisterUserInput{Email: "ana", Name: "Ana", Password: "wardrobe123"}, domainerror.ErrCodeInvalidEmail},
		{"weak password", RegisterUserInput{Email: "bo@example.com", Name: "Bo", Password: "short"}, domainerror.ErrCodeWeakPassword},
		{"missing name", RegisterUserInput{Email: "bo@example.com", Password: "wardrobe123"}, domainerror.ErrCodeMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := register.Execute(ctx, tt.input)
			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) || authErr.Code != tt.expected {
				t.Errorf("expected code %s, got %v", tt.expected, err)
			}
		})
	}

	if _, err := login.Execute(ctx, LoginUserInput{Email: "ANA@example.com", Password: "wardrobe123"}); err != nil {
		t.Errorf("unexpected login error: %v", err)
	}
	if _, err := login.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "wrong-password"}); !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := login.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "wardrobe123"}); !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	tokens := &memoryTokens{revoked: map[string]bool{}}
	users := newMemoryUserRepo()
	user := entity.NewUser("ana@example.com", "Ana", "hash", "Porto", []string{"casual"})
	users.users[user.ID] = user
	refresh := NewRefreshTokenUseCase(users, tokens)
	pair, _ := tokens.GenerateTokenPair(ctx, user.ID, user.Email, false)

	user.Location = "Lisbon"
	refreshed, err := refresh.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.RefreshToken == pair.RefreshToken {
		t.Error("expected a rotated refresh token")
	}
	if refreshed.User == nil || refreshed.User.Location != "Lisbon" {
		t.Errorf("expected the current profile, got %+v", refreshed.User)
	}

	if _, err := refresh.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken}); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected reuse to fail with ErrInvalidToken, got %v", err)
	}

	loggedOut, err := NewLogoutUserUseCase(tokens).Execute(ctx, LogoutUserInput{RefreshToken: refreshed.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loggedOut.UserID != user.ID || loggedOut.Message != LogoutMessage {
		t.Errorf("unexpected logout output %+v", loggedOut)
	}
	if valid, _ := tokens.IsRefreshTokenValid(ctx, refreshed.RefreshToken); valid {
		t.Error("expected logout to revoke the refresh token")
	}

	t.Run("logout with a garbage token still succeeds", func(t *testing.T) {
		output, err := NewLogoutUserUseCase(tokens).Execute(ctx, LogoutUserInput{RefreshToken: "garbage"})
		if err != nil || output.UserID != uuid.Nil {
			t.Errorf("expected anonymous logout, got %+v, %v", output, err)
		}
	})

	t.Run("refresh for a deleted account", func(t *testing.T) {
		ghost := uuid.New()
		ghostPair, _ := tokens.GenerateTokenPair(ctx, ghost, "ghost@example.com", false)
		_, err := refresh.Execute(ctx, RefreshTokenInput{RefreshToken: ghostPair.RefreshToken})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
		if valid, _ := tokens.IsRefreshTokenValid(ctx, ghostPair.RefreshToken); !valid {
			t.Error("a rejected refresh must not revoke the token")
		}
	})
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserRepo()
	user := entity.NewUser("ana@example.com", "Ana", "hash", "Lisbon", []string{"casual"})
	users.users[user.ID] = user

	location := " Porto "
	output, err := NewUpdateProfileUseCase(users).Execute(ctx, UpdateProfileInput{
		UserID:           user.ID,
		Location:         &location,
		StylePreferences: []string{"formal"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.User.Location != "Porto" || output.User.Name != "Ana" {
		t.Errorf("unexpected profile %+v", output.User)
	}
	if len(output.User.StylePreferences) != 1 || output.User.StylePreferences[0] != "formal" {
		t.Errorf("expected preferences to be replaced, got %v", output.User.StylePreferences)
	}

	if _, err := NewUpdateProfileUseCase(users).Execute(ctx, UpdateProfileInput{UserID: uuid.New()}); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
