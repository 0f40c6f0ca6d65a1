package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/torre9/condominio/internal/condominio/types"
)

var ErrMalformed = errors.New("malformed numeric cell")

// IsEmpty reports whether a raw cell holds no usable value. A single dash is
// the workbook's placeholder for "nothing here"; gota renders missing string
// elements as NaN.
func IsEmpty(raw string) bool {
	t := strings.TrimSpace(raw)
	return t == "" || t == "-" || t == "NaN"
}

// Amount coerces a raw currency cell into a non-negative amount. Empty and
// placeholder cells normalize to 0. Both 1,234.56 and 1.234,56 styles appear
// in the source workbook.
func Amount(raw string) (float64, error) {
	if IsEmpty(raw) {
		return 0, nil
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, " ", "")

	if i := strings.Index(clean, ","); i >= 0 {
		if strings.Contains(clean[i:], ".") {
			// 1,234.56 style: commas are thousands separators
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			// 1.234,56 style
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.ReplaceAll(clean, ",", ".")
		}
	}

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	if val < 0 {
		return 0, fmt.Errorf("%w: negative amount %q", ErrMalformed, raw)
	}
	return val, nil
}

// IsSentinel reports whether the row at rowIdx matches one of the sheet's
// non-data markers.
func IsSentinel(df *dataframe.DataFrame, rowIdx int, spec types.SheetSpec) bool {
	for column, markers := range spec.Sentinels {
		val := strings.TrimSpace(GetStr(column, rowIdx, df))
		for _, marker := range markers {
			if val == marker {
				return true
			}
		}
	}
	return false
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

func GetStr(col string, rowIdx int, df *dataframe.DataFrame) string {
	if df == nil {
		return ""
	}

	if containsString(df.Names(), col) {
		return df.Col(col).Elem(rowIdx).String()
	}
	return ""
}
