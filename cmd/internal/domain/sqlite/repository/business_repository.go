package repository

import (
	"errors"

	"entitysearch/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultBusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *DefaultBusinessRepository {
	return &DefaultBusinessRepository{db: db}
}

func (r *DefaultBusinessRepository) FindByIdentifier(identifier string) (*entity.CachedBusiness, error) {
	var business entity.CachedBusiness
	err := r.db.
		Where("identifier = ?", identifier).
		First(&business).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *DefaultBusinessRepository) Save(business *entity.CachedBusiness) error {
	return r.db.Save(business).Error
}

func (r *DefaultBusinessRepository) DeleteExpired(before int64) (int64, error) {
	res := r.db.
		Where("cached_at < ?", before).
		Delete(&entity.CachedBusiness{})
	return res.RowsAffected, res.Error
}
