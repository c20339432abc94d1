package resource

import "fmt"

var Registry = map[string]*Resource{}

func InitRegistry(dir string) error {
	if err := LoadResourcesFromDir(dir); err != nil {
		return fmt.Errorf("load error: %w", err)
	}
	if err := LinkAssociations(); err != nil {
		return fmt.Errorf("link error: %w", err)
	}
	if err := ValidateRegistry(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
