package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadResourcesFromDir(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resource descriptors found in %s", dir)
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		// 1. Разбираем в yaml.Node для структурной валидации
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return fmt.Errorf("YAML parse error in %s: %w", path, err)
		}

		// YAML всегда [0] - документ, [1] - root mapping
		if len(root.Content) == 0 {
			return fmt.Errorf("empty YAML in %s", path)
		}

		if err := validateYAMLNode(root.Content[0], "resource"); err != nil {
			return fmt.Errorf("validation error in %s: %w", path, err)
		}

		// 2. Теперь уже Unmarshal в ресурс
		var res Resource
		if err := root.Decode(&res); err != nil {
			return fmt.Errorf("unmarshal error in %s: %w", path, err)
		}

		// 3. Регистрируем ресурс
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		res.Name = name
		Registry[name] = &res
	}
	return nil
}

// UnmarshalYAML поддерживает скалярную запись search_fields:
//
//	search_fields:
//	  - email
//	  - {association: profile, fields: [phone]}
func (s *SearchField) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Field = node.Value
		return nil
	}
	type plain SearchField
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = SearchField(p)
	return nil
}
