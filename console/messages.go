// SPDX-License-Identifier: MIT

package console

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguage is returned by Catalog for a language without messages.
var ErrUnknownLanguage = errors.New("console: unknown language")

// Messages is the user-visible text of a session. Format verbs are noted per field.
type Messages struct {
	PromptDimension string // %d: upper bound
	PromptElements  string // %d, %d: side, side
	RowEntered      string // %d: 1-based row
	LabelInput      string
	LabelResult     string
	InputError      string
	BadDimension    string // %q, %d: token, upper bound
	NoDimension     string // %d: upper bound
	BadElement      string // %d, %d, %q: row, column, token
	NoElement       string // %d, %d: row, column
}

var catalogs = map[string]Messages{
	"en": {
		PromptDimension: "Enter the size of the square matrix (at most %d): ",
		PromptElements:  "Enter the elements of the %d x %d matrix:\n",
		RowEntered:      "Row %d entered\n",
		LabelInput:      "Matrix A:",
		LabelResult:     "Matrix B (result):",
		InputError:      "input error",
		BadDimension:    "matrix size %q is not an integer from 1 to %d",
		NoDimension:     "matrix size is missing, expected an integer from 1 to %d",
		BadElement:      "row %d, column %d: %q is not a number",
		NoElement:       "row %d, column %d: unexpected end of input",
	},
	"ru": {
		PromptDimension: "Введите размер квадратной матрицы (не более %d): ",
		PromptElements:  "Введите элементы матрицы %d x %d:\n",
		RowEntered:      "Введена строка %d\n",
		LabelInput:      "Матрица A:",
		LabelResult:     "Матрица B (результат):",
		InputError:      "ошибка ввода данных",
		BadDimension:    "размер матрицы %q не является целым числом от 1 до %d",
		NoDimension:     "не указан размер матрицы, ожидается целое число от 1 до %d",
		BadElement:      "строка %d, столбец %d: %q не является числом",
		NoElement:       "строка %d, столбец %d: неожиданный конец ввода",
	},
}

// Catalog returns the messages for lang ("en" or "ru", case-insensitive).
func Catalog(lang string) (Messages, error) {
	m, ok := catalogs[strings.ToLower(lang)]
	if !ok {
		return Messages{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	return m, nil
}

// Describe renders an input error in the catalog's language. Errors that are
// not input errors fall back to err.Error().
func (m Messages) Describe(err error) string {
	var de *DimensionError
	if errors.As(err, &de) {
		if de.Token == "" {
			return fmt.Sprintf("%s: %s", m.InputError, fmt.Sprintf(m.NoDimension, de.Max))
		}

		return fmt.Sprintf("%s: %s", m.InputError, fmt.Sprintf(m.BadDimension, de.Token, de.Max))
	}

	var ee *ElementError
	if errors.As(err, &ee) {
		if ee.Token == "" {
			return fmt.Sprintf("%s: %s", m.InputError, fmt.Sprintf(m.NoElement, ee.Row+1, ee.Col+1))
		}

		return fmt.Sprintf("%s: %s", m.InputError, fmt.Sprintf(m.BadElement, ee.Row+1, ee.Col+1, ee.Token))
	}

	return fmt.Sprintf("%s: %v", m.InputError, err)
}
