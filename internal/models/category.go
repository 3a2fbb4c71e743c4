package models

// CategoryConfig represents one category and the keywords that map to it
// in the categories YAML file. Keyword order is significant: earlier
// keywords win when several match the same token.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
