package resource

import (
	"fmt"
	"strings"
)

// ValidateRegistry выполняет полную проверку реестра после линковки:
// 1) у каждого ресурса есть таблица и хотя бы одно поле,
// 2) search_fields и ordering ссылаются на существующие поля,
// 3) поля поиска по ассоциациям существуют у связанного ресурса.
func ValidateRegistry() error {
	for name, res := range Registry {
		if strings.TrimSpace(res.Table) == "" {
			return fmt.Errorf("resource '%s' has no table", name)
		}
		if len(res.Fields) == 0 {
			return fmt.Errorf("resource '%s' has no fields", name)
		}
		for _, f := range res.Fields {
			if strings.TrimSpace(f.Name) == "" {
				return fmt.Errorf("resource '%s' has a field without a name", name)
			}
		}

		for _, sf := range res.SearchFields {
			if err := validateSearchField(name, res, sf); err != nil {
				return err
			}
		}

		for _, ord := range res.Ordering {
			if !res.HasField(ord.Field) {
				return fmt.Errorf("ordering field '%s' not found in resource '%s'", ord.Field, name)
			}
			dir := strings.ToLower(ord.Direction)
			if dir != "asc" && dir != "desc" {
				return fmt.Errorf("ordering direction '%s' invalid in resource '%s' (want asc|desc)", ord.Direction, name)
			}
		}

		// Первичный ключ, если объявлен, должен существовать
		for _, pk := range res.GetPrimaryKeys() {
			if !res.HasField(pk) {
				return fmt.Errorf("primary key '%s' not found in resource '%s'", pk, name)
			}
		}
	}
	return nil
}

func validateSearchField(resName string, res *Resource, sf SearchField) error {
	if sf.Field != "" && sf.Association != "" {
		return fmt.Errorf("search field in '%s' declares both field and association", resName)
	}
	if sf.Field != "" {
		if !res.HasField(sf.Field) {
			return fmt.Errorf("search field '%s' not found in resource '%s'", sf.Field, resName)
		}
		return nil
	}
	if sf.Association == "" {
		return fmt.Errorf("search field in '%s' declares neither field nor association", resName)
	}
	assoc := res.GetAssociation(sf.Association)
	if assoc == nil {
		return fmt.Errorf("search association '%s' not found in resource '%s'", sf.Association, resName)
	}
	if len(sf.Fields) == 0 {
		return fmt.Errorf("search association '%s' in '%s' lists no fields", sf.Association, resName)
	}
	target := assoc.GetResourceRef()
	for _, f := range sf.Fields {
		if !target.HasField(f) {
			return fmt.Errorf("search field '%s.%s' not found in resource '%s'", sf.Association, f, assoc.Resource)
		}
	}
	return nil
}
