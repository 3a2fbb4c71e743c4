package store

import (
	"fauzan/catat-duit/internal/models"
)

// MockCategoryStore is a mock implementation of the category store for testing.
type MockCategoryStore struct {
	Categories          []models.CategoryConfig
	LoadCategoriesError error
}

// LoadCategories returns the mock categories.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}
