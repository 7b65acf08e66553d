package utils

import "gorm.io/gorm"

// Paginate turns page/size query values into a gorm scope. Zero or negative
// values fall back to the first page of 50.
func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if size < 1 {
			size = 50
		}
		offset := (page - 1) * size
		return db.Offset(offset).Limit(size)
	}
}
