package query

import (
	"AdminBrowseAPI/internal/resource"
)

// AssociationSearch — ассоциация с подмножеством её полей, совместимых
// с типом поискового значения.
type AssociationSearch struct {
	Name   string
	Assoc  *resource.Association
	Fields []string
}

// SearchSelection — собственные поля и ассоциации, пережившие отбор по типу.
type SearchSelection struct {
	Fields       []string
	Associations []AssociationSearch
}

func (s SearchSelection) Empty() bool {
	return len(s.Fields) == 0 && len(s.Associations) == 0
}

// SelectSearchFields сужает объявленные поля поиска до совместимых с
// классом поискового значения: сравнение числа с текстовой колонкой
// обречено, такие условия не генерируем. Ассоциация без выживших полей
// выпадает целиком.
func SelectSearchFields(res *resource.Resource, termType TermType) SearchSelection {
	var sel SearchSelection
	for _, sf := range res.SearchFields {
		if sf.Field != "" {
			semType, ok := res.GetFieldType(sf.Field)
			if !ok {
				continue
			}
			if tt, searchable := termTypeForField(semType); searchable && tt == termType {
				sel.Fields = append(sel.Fields, sf.Field)
			}
			continue
		}

		assoc := res.GetAssociation(sf.Association)
		if assoc == nil || assoc.GetResourceRef() == nil {
			continue
		}
		target := assoc.GetResourceRef()
		var kept []string
		for _, f := range sf.Fields {
			semType, ok := target.GetFieldType(f)
			if !ok {
				continue
			}
			if tt, searchable := termTypeForField(semType); searchable && tt == termType {
				kept = append(kept, f)
			}
		}
		if len(kept) > 0 {
			sel.Associations = append(sel.Associations, AssociationSearch{
				Name:   sf.Association,
				Assoc:  assoc,
				Fields: kept,
			})
		}
	}
	return sel
}
