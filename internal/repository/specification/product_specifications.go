package specification

import "gorm.io/gorm"

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByProductID struct {
	ID string
}

func (s ByProductID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}
