// Package period — interval.go разбирает строки интервалов и переводит их в текст.
package period

import (
	"math"
	"regexp"
	"strings"

	"github.com/sosodev/duration"
)

// maxComponent — верхняя граница одной компоненты интервала.
const maxComponent = math.MaxInt32

// isoPattern — компоненты интервала в порядке ISO 8601, каждая не более
// одного раза, только целые числа.
var isoPattern = regexp.MustCompile(`^P(\d+Y)?(\d+M)?(\d+W)?(\d+D)?(T(\d+H)?(\d+M)?(\d+S)?)?$`)

// Interval — разобранный интервал ISO 8601.
// Недели при разборе переводятся в дни (P2W → 14 дней).
// Время суток хранится, но в текст не выводится.
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero сообщает, что все компоненты интервала равны нулю.
func (iv Interval) IsZero() bool {
	return iv == Interval{}
}

// ToInterval разбирает строку интервала ISO 8601.
//
// Ошибки:
//   - ErrEmptyInterval для пустой строки
//   - ErrMalformedDuration, если строка не является корректным интервалом:
//     синтаксическая ошибка, нарушен порядок или повторены компоненты,
//     отрицательный интервал, дробные компоненты
//
// Пример:
//
//	iv, err := ToInterval("P1Y2D") // iv.Years == 1, iv.Days == 2
func ToInterval(s string) (Interval, error) {
	if s == "" {
		entry().Debug("пустая строка интервала")
		return Interval{}, ErrEmptyInterval
	}

	// Парсер мягче строгого ISO 8601: не проверяет порядок и повторы
	// компонент, пропускает голое "P", "PT", хвост без буквы ("P1"),
	// дроби и знак минус. Такие строки отсекаем сами.
	if s == "P" || strings.HasSuffix(s, "T") || !isoPattern.MatchString(s) {
		entry().WithField("input", s).Debug("некорректный интервал")
		return Interval{}, malformed(s, nil)
	}

	d, err := duration.Parse(s)
	if err != nil {
		entry().WithError(err).WithField("input", s).Debug("парсер отклонил интервал")
		return Interval{}, malformed(s, err)
	}

	parts := []float64{d.Years, d.Months, d.Weeks*7 + d.Days, d.Hours, d.Minutes, d.Seconds}
	for _, v := range parts {
		if v > maxComponent {
			entry().WithField("input", s).Debug("компонента интервала слишком велика")
			return Interval{}, malformed(s, nil)
		}
	}

	return Interval{
		Years:   int(parts[0]),
		Months:  int(parts[1]),
		Days:    int(parts[2]),
		Hours:   int(parts[3]),
		Minutes: int(parts[4]),
		Seconds: int(parts[5]),
	}, nil
}

// CountAndUnit сводит интервал к одной паре «количество + тип».
//
// Берётся первая ненулевая компонента в порядке год → месяц → день.
// Младшие компоненты отбрасываются: "P1Y6M" даёт (1, Year).
// Нулевой интервал даёт (0, Day).
//
// Ошибки те же, что у ToInterval.
func CountAndUnit(s string) (int, Unit, error) {
	iv, err := ToInterval(s)
	if err != nil {
		return 0, "", err
	}

	switch {
	case iv.Years > 0:
		return iv.Years, Year, nil
	case iv.Months > 0:
		return iv.Months, Month, nil
	case iv.Days > 0:
		return iv.Days, Day, nil
	}
	return 0, Day, nil
}

// ToPeriod — то же, что CountAndUnit, но возвращает Period.
func ToPeriod(s string) (Period, error) {
	count, unit, err := CountAndUnit(s)
	if err != nil {
		return Period{}, err
	}
	return Period{Count: count, Unit: unit}, nil
}

// intervalFields — компоненты, выводимые в текст, в фиксированном порядке.
var intervalFields = []struct {
	unit  Unit
	value func(Interval) int
}{
	{Year, func(iv Interval) int { return iv.Years }},
	{Month, func(iv Interval) int { return iv.Months }},
	{Day, func(iv Interval) int { return iv.Days }},
}

// IntervalToString переводит интервал в читаемую строку на русском языке.
//
// В отличие от CountAndUnit выводятся ВСЕ ненулевые компоненты
// (год, месяц, день — именно в этом порядке). Нулевые пропускаются.
//
// Примеры:
//
//	IntervalToString("P1Y")   → "1 год"
//	IntervalToString("P1Y2D") → "1 год 2 дня"
//	IntervalToString("P21D")  → "21 день"
//	IntervalToString("P0D")   → ""
func IntervalToString(s string) (string, error) {
	iv, err := ToInterval(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, f := range intervalFields {
		v := f.value(iv)
		if v <= 0 {
			continue
		}
		b.WriteString(Period{Count: v, Unit: f.unit}.String())
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String()), nil
}
