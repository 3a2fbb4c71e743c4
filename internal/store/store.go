// Package store provides loading of the category keyword database.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fauzan/catat-duit/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading of category keyword data.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a new store for category data.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "catat-duit", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the category keyword list from the YAML file.
// A missing file is not an error: the caller falls back to its built-in map.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("Categories file not found: %s", filename)
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Proper structure first: "categories: [...]"
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		log.Debugf("Loaded %d categories from %s", len(categoriesConfig.Categories), filePath)
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare top-level array without the "categories" key.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err == nil && len(categories) > 0 {
		log.Debugf("Loaded %d categories from %s (bare list)", len(categories), filePath)
		return categories, nil
	}

	return nil, fmt.Errorf("could not parse categories file %s", filePath)
}
