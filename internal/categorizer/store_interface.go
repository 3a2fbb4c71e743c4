package categorizer

import (
	"fauzan/catat-duit/internal/models"
)

// CategoryStoreInterface defines the store operations the categorizer needs.
// It enables dependency injection of mock stores in tests.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}
