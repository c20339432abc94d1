package resource

// Resource описывает admin-ресурс в конфигурации
type Resource struct {
	Name         string                  `yaml:"-"` // logical name of the resource
	Table        string                  `yaml:"table"`
	Fields       []Field                 `yaml:"fields"`
	Associations map[string]*Association `yaml:"associations"`
	SearchFields []SearchField           `yaml:"search_fields"`
	Ordering     Ordering                `yaml:"ordering"`
	PrimaryKeys  []string                `yaml:"primary_keys"` // optional, e.g. ["id"] or ["part1","part2"]; explicit [] means keyless
}

// Field описывает колонку ресурса и её семантический тип
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "int", "string", "uuid", "bool", "float", "time"
}

// Association описывает связь ресурса с другим ресурсом
type Association struct {
	Type     string `yaml:"type"`     // has_one, has_many, belongs_to
	Resource string `yaml:"resource"` // логическое имя связанного ресурса
	Table    string `yaml:"table"`    // имя таблицы в SQL (заполняется при линковке)
	FK       string `yaml:"fk"`       // внешний ключ
	PK       string `yaml:"pk"`       // if not "id", primary key side of the join

	// для runtime (не сериализуется)
	_ResourceRef *Resource `yaml:"-"`
}

// SearchField — либо собственное поле ресурса, либо пара
// (association, поля связанного ресурса).
type SearchField struct {
	Field       string   `yaml:"field"`
	Association string   `yaml:"association"`
	Fields      []string `yaml:"fields"`
}

// OrderTerm — одно звено сортировки
type OrderTerm struct {
	Field     string `yaml:"field"`
	Direction string `yaml:"direction"` // "asc" | "desc"
}

type Ordering []OrderTerm

// GetPrimaryKeys возвращает список полей первичного ключа ресурса.
// Отсутствие ключа в конфиге — default ["id"]; явный пустой список
// означает ресурс без первичного ключа.
func (r *Resource) GetPrimaryKeys() []string {
	if r.PrimaryKeys == nil {
		return []string{"id"}
	}
	return r.PrimaryKeys
}

// GetFieldType возвращает семантический тип поля по имени.
func (r *Resource) GetFieldType(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return "", false
}

func (r *Resource) HasField(name string) bool {
	_, ok := r.GetFieldType(name)
	return ok
}

func (r *Resource) GetAssociation(name string) *Association {
	if r == nil || r.Associations == nil {
		return nil
	}
	return r.Associations[name]
}

// GetResourceRef возвращает ссылку на связанный ресурс, если он уже слинкован
func (a *Association) GetResourceRef() *Resource {
	return a._ResourceRef
}

// SetResourceRef устанавливает ссылку на ресурс (вызывается из Registry после загрузки)
func (a *Association) SetResourceRef(res *Resource) {
	a._ResourceRef = res
}
