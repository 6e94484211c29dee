// Package period переводит интервалы ISO 8601 вида P{n}D, P{n}M, P{n}Y
// в читаемые русские строки и обратно.
//
// Поддерживаются только «одноединичные» периоды: дни, месяцы, годы.
// Разбор синтаксиса ISO 8601 выполняет github.com/sosodev/duration,
// пакет лишь проверяет вход и сводит результат к нужной форме.
//
// Все функции чистые и безопасны для параллельного вызова.
package period

import (
	"fmt"
	"strconv"
)

// Unit — тип периода.
type Unit string

// Поддерживаемые типы периодов
const (
	Day   Unit = "day"
	Month Unit = "month"
	Year  Unit = "year"
)

// designators сопоставляет букву ISO 8601 с типом периода.
var designators = map[string]Unit{
	"D": Day,
	"M": Month,
	"Y": Year,
}

// Valid сообщает, является ли u одним из трёх известных типов.
func (u Unit) Valid() bool {
	switch u {
	case Day, Month, Year:
		return true
	}
	return false
}

// Designator возвращает букву ISO 8601 для типа: "D", "M" или "Y".
// Для неизвестного типа — пустая строка.
func (u Unit) Designator() string {
	switch u {
	case Day:
		return "D"
	case Month:
		return "M"
	case Year:
		return "Y"
	}
	return ""
}

// UnitFromDesignator возвращает тип периода по букве ISO 8601.
//
// Примеры:
//
//	UnitFromDesignator("D") → Day, true
//	UnitFromDesignator("W") → "", false
func UnitFromDesignator(d string) (Unit, bool) {
	u, ok := designators[d]
	return u, ok
}

// Period — пара «количество + тип периода».
type Period struct {
	Count int
	Unit  Unit
}

// ISO возвращает период в формате ISO 8601 (см. Compose).
func (p Period) ISO() (string, error) {
	return Compose(p.Count, p.Unit)
}

// String возвращает период по-русски, например "5 дней".
// Для некорректного периода возвращается пустая строка.
func (p Period) String() string {
	forms, ok := FormsFor(p.Unit)
	if !ok || p.Count < 0 {
		return ""
	}
	return fmt.Sprintf("%d %s", p.Count, NumeralSuffix(p.Count, forms))
}

// Compose создаёт строку интервала в формате ISO 8601.
//
// Ошибки:
//   - ErrNegativeCount, если count < 0
//   - ErrUnknownUnit, если unit не Day, Month или Year
//
// Примеры:
//
//	Compose(3, Day)   → "P3D"
//	Compose(2, Year)  → "P2Y"
//	Compose(-1, Day)  → ошибка
func Compose(count int, unit Unit) (string, error) {
	if count < 0 {
		entry().WithField("count", count).Debug("отрицательное количество периодов")
		return "", ErrNegativeCount
	}
	if !unit.Valid() {
		entry().WithField("unit", string(unit)).Debug("неизвестный тип периода")
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, string(unit))
	}
	return "P" + strconv.Itoa(count) + unit.Designator(), nil
}
