package query

import (
	"regexp"
	"strconv"
)

// TermType — класс поискового значения, по нему отбираются поля поиска.
type TermType int

const (
	TermString TermType = iota
	TermInteger
	TermUUID
)

func (t TermType) String() string {
	switch t {
	case TermInteger:
		return "integer"
	case TermUUID:
		return "uuid"
	default:
		return "string"
	}
}

// Каноническая текстовая форма UUID: 8-4-4-4-12 hex-групп
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// ClassifyTerm классифицирует поисковую строку: UUID, положительное
// целое или обычная строка. Ноль, отрицательные и частично числовые
// значения — строка.
func ClassifyTerm(term string) TermType {
	if uuidPattern.MatchString(term) {
		return TermUUID
	}
	if digitsPattern.MatchString(term) {
		if n, err := strconv.ParseInt(term, 10, 64); err == nil && n > 0 {
			return TermInteger
		}
	}
	return TermString
}

// Value приводит поисковую строку к сравниваемому значению её класса.
func (t TermType) Value(term string) any {
	if t == TermInteger {
		n, err := strconv.ParseInt(term, 10, 64)
		if err == nil {
			return n
		}
	}
	return term
}

// termTypeForField сопоставляет семантический тип поля классу поискового
// значения. Поля прочих типов (bool, float, time) в поиске не участвуют.
func termTypeForField(semType string) (TermType, bool) {
	switch semType {
	case "string":
		return TermString, true
	case "int":
		return TermInteger, true
	case "uuid":
		return TermUUID, true
	}
	return 0, false
}
