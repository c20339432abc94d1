package resource

import (
	"fmt"
	"unicode"
)

func LinkAssociations() error {
	for resName, res := range Registry {
		for assocName, assoc := range res.Associations {
			target, ok := Registry[assoc.Resource]
			if !ok {
				return fmt.Errorf("invalid association: resource '%s' not found in '%s.%s'", assoc.Resource, resName, assocName)
			}
			assoc._ResourceRef = target

			if assoc.Type != "has_many" && assoc.Type != "has_one" && assoc.Type != "belongs_to" {
				return fmt.Errorf("association '%s.%s' must have valid Type (has_many, has_one, belongs_to), got '%s'", resName, assocName, assoc.Type)
			}

			// Таблица цели, если не задана явно
			if assoc.Table == "" {
				assoc.Table = target.Table
			}

			// Присваиваем FK по умолчанию, если не задан
			if assoc.FK == "" {
				switch assoc.Type {
				case "belongs_to":
					// FK в текущем ресурсе, указывает на связанный
					assoc.FK = assocName + "_id"
				case "has_one", "has_many":
					// FK в связанном ресурсе, указывает на текущий
					assoc.FK = toSnakeCase(resName) + "_id"
				}
			}

			// Присваиваем PK по умолчанию, если не задан
			if assoc.PK == "" {
				assoc.PK = "id"
			}

			res.Associations[assocName] = assoc
		}
	}
	return nil
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
