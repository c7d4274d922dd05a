package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories apply any number of them
// before executing; specs compose by chaining Apply.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
