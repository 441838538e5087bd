package repository

import (
	"time"

	"gorm.io/gorm"
)

// DateRangeScope returns a GORM scope filtering the given date column to the
// inclusive [start, end] range. Nil bounds leave that side open. Dates are
// compared at day granularity, matching the type:date columns.
func DateRangeScope(column string, start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where(column+" >= ?", start.Format("2006-01-02"))
		}
		if end != nil {
			db = db.Where(column+" <= ?", end.Format("2006-01-02"))
		}
		return db
	}
}
