// Package period — numeral.go содержит правила согласования русских
// числительных с существительными («1 год», «2 года», «5 лет»).
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Forms — три формы слова после числительного.
//
//	One  — 1, 21, 31, 101 ("год")
//	Few  — 2-4, 22-24 ("года")
//	Many — 0, 5-20, 25-30, 111 ("лет")
type Forms struct {
	One  string
	Few  string
	Many string
}

var (
	yearForms  = Forms{One: "год", Few: "года", Many: "лет"}
	monthForms = Forms{One: "месяц", Few: "месяца", Many: "месяцев"}
	dayForms   = Forms{One: "день", Few: "дня", Many: "дней"}
)

// FormsFor возвращает формы слова для типа периода.
// Возвращается копия, таблицу изменить нельзя.
func FormsFor(u Unit) (Forms, bool) {
	switch u {
	case Year:
		return yearForms, true
	case Month:
		return monthForms, true
	case Day:
		return dayForms, true
	}
	return Forms{}, false
}

// Amount — типы, которые принимает NumeralSuffix.
type Amount interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

var (
	// numericPattern — полная запись числа после замены запятой на точку
	numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	// leadingNumberPattern — самый длинный числовой префикс строки
	leadingNumberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	// amountPattern — целая часть и не более двух знаков после разделителя
	amountPattern = regexp.MustCompile(`^(\d+)([,.](\d{1,2}))?$`)
)

// NumeralSuffix возвращает форму слова для количества amount.
//
// amount может быть числом или строкой; в строке допускается
// и точка, и запятая как десятичный разделитель.
// Функция никогда не возвращает ошибку: для нечисловой строки,
// отрицательного числа или числа с тремя и более знаками после
// разделителя результат — пустая строка.
//
// Правило: n = целая часть % 100, если n > 19, то n %= 10;
// n == 1 → One, n in [2,3,4] → Few, иначе → Many.
//
// Число перед проверкой записывается в десятичном виде без порядка,
// поэтому большие числа тоже получают форму: NumeralSuffix(1e20, forms)
// даёт Many. В PHP-версии такое число превращалось в "1.0E+20"
// и результат был пустым.
//
// Примеры (forms = Forms{"год", "года", "лет"}):
//
//	NumeralSuffix(1, forms)     → "год"
//	NumeralSuffix(22, forms)    → "года"
//	NumeralSuffix(15, forms)    → "лет"
//	NumeralSuffix("2,5", forms) → "года"
//	NumeralSuffix("abc", forms) → ""
func NumeralSuffix[T Amount](amount T, forms Forms) string {
	raw := strings.TrimSpace(fmt.Sprint(amount))
	if !numericPattern.MatchString(strings.ReplaceAll(raw, ",", ".")) {
		entry().WithField("amount", raw).Debug("нечисловое количество")
		return ""
	}

	normalized := strconv.FormatFloat(CleanFloatFromComma(raw), 'f', -1, 64)
	m := amountPattern.FindStringSubmatch(normalized)
	if m == nil {
		return ""
	}

	// Для правила нужны только две последние цифры целой части,
	// поэтому длинные числа не переполняют int.
	intPart := m[1]
	if len(intPart) > 2 {
		intPart = intPart[len(intPart)-2:]
	}
	n, _ := strconv.Atoi(intPart)
	if n > 19 {
		n %= 10
	}

	switch n {
	case 1:
		return forms.One
	case 2, 3, 4:
		return forms.Few
	default:
		return forms.Many
	}
}

// CleanFloatFromComma заменяет запятые на точки и переводит строку в число.
//
// Берётся самый длинный числовой префикс строки (знак, цифры, дробная
// часть, порядок); если его нет — 0.
//
// Примеры:
//
//	CleanFloatFromComma("3,5")   → 3.5
//	CleanFloatFromComma("12abc") → 12
//	CleanFloatFromComma("abc")   → 0
func CleanFloatFromComma(text string) float64 {
	text = strings.TrimLeft(strings.ReplaceAll(text, ",", "."), " \t\n\r\v\f")
	prefix := leadingNumberPattern.FindString(text)
	if prefix == "" {
		return 0
	}
	// При переполнении ParseFloat возвращает ±Inf вместе с ошибкой — оставляем Inf.
	f, _ := strconv.ParseFloat(prefix, 64)
	return f
}
