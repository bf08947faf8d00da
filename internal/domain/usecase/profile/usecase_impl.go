package profile

import (
	"context"
	"strings"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/auth"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type profileUseCase struct {
	profileGateway db.ProfileGateway
	authGateway    auth.AuthGateway
	now            func() time.Time
}

func NewProfileUseCase(profileGateway db.ProfileGateway, authGateway auth.AuthGateway) UseCase {
	return &profileUseCase{
		profileGateway: profileGateway,
		authGateway:    authGateway,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (uc *profileUseCase) Get(ctx context.Context, session *entity.Session) (*model.ProfileResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	profile, err := uc.load(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return toResponse(session.Email, profile), nil
}

func (uc *profileUseCase) Update(ctx context.Context, session *entity.Session, dto model.UpdateProfileDTO) (*model.ProfileResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	email := strings.TrimSpace(dto.Email)
	if email != "" && !strings.EqualFold(email, session.Email) {
		if err := uc.authGateway.UpdateEmail(ctx, session.AccessToken, email); err != nil {
			return nil, err
		}
	}

	profile, err := uc.load(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	profile.Username = entity.OptionalText(dto.Username)
	profile.UpdatedAt = uc.now()

	if err := uc.profileGateway.Save(ctx, *profile); err != nil {
		return nil, err
	}
	// The provider keeps the old address until the change is confirmed.
	return toResponse(session.Email, profile), nil
}

func (uc *profileUseCase) UpdateTheme(ctx context.Context, session *entity.Session, theme string) (*model.ProfileResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	selected := entity.Theme(strings.ToLower(strings.TrimSpace(theme)))
	if !selected.IsValid() {
		return nil, model.ErrInvalidTheme
	}

	profile, err := uc.load(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	profile.Theme = selected
	profile.UpdatedAt = uc.now()

	if err := uc.profileGateway.Save(ctx, *profile); err != nil {
		return nil, err
	}
	return toResponse(session.Email, profile), nil
}

// load returns the stored profile or a default one when the user has no row yet.
func (uc *profileUseCase) load(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := uc.profileGateway.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.Profile{ID: userID, Theme: entity.ThemeSystem}
	}
	return profile, nil
}

func toResponse(email string, profile *entity.Profile) *model.ProfileResponse {
	return &model.ProfileResponse{
		ID:       profile.ID,
		Email:    email,
		Username: profile.Username,
		Theme:    string(profile.Theme),
	}
}
