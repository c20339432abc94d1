package resource

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Разрешённые ключи для объектов
var allowedResourceKeys = map[string]bool{
	"table":         true,
	"fields":        true,
	"associations":  true,
	"search_fields": true,
	"ordering":      true,
	"primary_keys":  true,
}

var allowedAssociationKeys = map[string]bool{
	"resource": true,
	"type":     true,
	"fk":       true,
	"pk":       true,
	"table":    true,
}

var allowedFieldKeys = map[string]bool{
	"name": true,
	"type": true,
}

var allowedSearchFieldKeys = map[string]bool{
	"field":       true,
	"association": true,
	"fields":      true,
}

var allowedOrderingKeys = map[string]bool{
	"field":     true,
	"direction": true,
}

// Разрешённые значения для type в полях
var allowedFieldTypeValues = map[string]bool{
	"int":    true,
	"string": true,
	"uuid":   true,
	"bool":   true,
	"float":  true,
	"time":   true,
}

func validateYAMLNode(node *yaml.Node, context string) error {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := validateYAMLNode(child, "resource"); err != nil {
				return err
			}
		}

	case yaml.MappingNode:
		var allowedKeys map[string]bool
		switch context {
		case "resource":
			allowedKeys = allowedResourceKeys
		case "association":
			allowedKeys = allowedAssociationKeys
		case "field":
			allowedKeys = allowedFieldKeys
		case "search-field":
			allowedKeys = allowedSearchFieldKeys
		case "order-term":
			allowedKeys = allowedOrderingKeys
		default:
			allowedKeys = nil // свободная форма
		}

		for i := 0; i < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			valNode := node.Content[i+1]
			key := keyNode.Value

			if allowedKeys != nil && !allowedKeys[key] {
				return fmt.Errorf("unknown key '%s' in %s", key, context)
			}

			// Проверка допустимых значений для type в поле
			if context == "field" && key == "type" {
				if !allowedFieldTypeValues[valNode.Value] {
					return fmt.Errorf("unknown type value '%s' in field", valNode.Value)
				}
			}

			// Определяем новый контекст
			nextContext := ""
			switch {
			case context == "resource" && key == "associations":
				nextContext = "associations-map"
			case context == "associations-map":
				nextContext = "association"
			case context == "resource" && key == "fields":
				nextContext = "fields-seq"
			case context == "resource" && key == "search_fields":
				nextContext = "search-fields-seq"
			case context == "resource" && key == "ordering":
				nextContext = "ordering-seq"
			default:
				nextContext = context
			}

			if err := validateYAMLNode(valNode, nextContext); err != nil {
				return err
			}
		}

	case yaml.SequenceNode:
		itemContext := context
		switch context {
		case "fields-seq":
			itemContext = "field"
		case "search-fields-seq":
			itemContext = "search-field"
		case "ordering-seq":
			itemContext = "order-term"
		}
		for _, item := range node.Content {
			if err := validateYAMLNode(item, itemContext); err != nil {
				return err
			}
		}

	case yaml.ScalarNode:
		// скаляры не валидируем на ключи — они уже проверяются при разборе MappingNode
	}

	return nil
}
