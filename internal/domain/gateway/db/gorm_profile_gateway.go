package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
)

type GormProfileGateway struct {
	DB *gorm.DB
}

var _ ProfileGateway = (*GormProfileGateway)(nil)

func NewGormProfileGateway(db *gorm.DB) *GormProfileGateway {
	return &GormProfileGateway{DB: db}
}

func (gateway *GormProfileGateway) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profile entity.Profile
	err := gateway.DB.WithContext(ctx).First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding profile %s: %w", id, err)
	}
	return &profile, nil
}

// Save upserts the profile row on its id.
func (gateway *GormProfileGateway) Save(ctx context.Context, profile entity.Profile) error {
	err := gateway.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "theme", "updated_at"}),
		}).
		Create(&profile).Error
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", profile.ID, err)
	}
	return nil
}
