package stores

import (
	"context"

	"gorm.io/gorm"

	"nutritrack/models"
)

type UserStore struct{ db *gorm.DB }

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &u, nil
}

// SaveGoals stores the user and the day's goal snapshot in one transaction.
func (s *UserStore) SaveGoals(ctx context.Context, u *models.User, snapshot *models.DayGoal) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(u).Error; err != nil {
			return err
		}
		return upsertDayGoal(tx, snapshot)
	})
}

func (s *UserStore) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}
