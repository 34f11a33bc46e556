package parser

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// This file contains the function catalog used for interactive completion.

// FunctionCategory classifies SQL functions by their purpose.
type FunctionCategory string

// FunctionCategory constants for SQL function classification.
const (
	CategoryAggregate   FunctionCategory = "aggregate"
	CategoryWindow      FunctionCategory = "window"
	CategoryNumeric     FunctionCategory = "numeric"
	CategoryString      FunctionCategory = "string"
	CategoryDate        FunctionCategory = "date"
	CategoryConditional FunctionCategory = "conditional"
)

// FunctionInfo describes a SQL function.
type FunctionInfo struct {
	Name        string
	Signature   string
	Description string
	Category    FunctionCategory
	IsAggregate bool
}

// Catalog contains common functions shared by the supported dialects.
var Catalog = []FunctionInfo{
	// Aggregates
	{Name: "COUNT", Signature: "COUNT(expr | *)", Description: "Count rows or non-null values", Category: CategoryAggregate, IsAggregate: true},
	{Name: "SUM", Signature: "SUM(expr)", Description: "Sum of all values", Category: CategoryAggregate, IsAggregate: true},
	{Name: "AVG", Signature: "AVG(expr)", Description: "Average of all values", Category: CategoryAggregate, IsAggregate: true},
	{Name: "MIN", Signature: "MIN(expr)", Description: "Minimum value", Category: CategoryAggregate, IsAggregate: true},
	{Name: "MAX", Signature: "MAX(expr)", Description: "Maximum value", Category: CategoryAggregate, IsAggregate: true},
	{Name: "STRING_AGG", Signature: "STRING_AGG(expr, sep [ORDER BY ...])", Description: "Concatenate strings with separator", Category: CategoryAggregate, IsAggregate: true},
	{Name: "ARRAY_AGG", Signature: "ARRAY_AGG(expr [ORDER BY ...])", Description: "Collect values into an array", Category: CategoryAggregate, IsAggregate: true},
	{Name: "STDDEV", Signature: "STDDEV(expr)", Description: "Sample standard deviation", Category: CategoryAggregate, IsAggregate: true},
	{Name: "VARIANCE", Signature: "VARIANCE(expr)", Description: "Sample variance", Category: CategoryAggregate, IsAggregate: true},

	// Window
	{Name: "ROW_NUMBER", Signature: "ROW_NUMBER() OVER (...)", Description: "Sequential row number in partition", Category: CategoryWindow},
	{Name: "RANK", Signature: "RANK() OVER (...)", Description: "Rank with gaps", Category: CategoryWindow},
	{Name: "DENSE_RANK", Signature: "DENSE_RANK() OVER (...)", Description: "Rank without gaps", Category: CategoryWindow},
	{Name: "NTILE", Signature: "NTILE(n) OVER (...)", Description: "Bucket number", Category: CategoryWindow},
	{Name: "LAG", Signature: "LAG(expr [, offset [, default]]) OVER (...)", Description: "Value from a preceding row", Category: CategoryWindow},
	{Name: "LEAD", Signature: "LEAD(expr [, offset [, default]]) OVER (...)", Description: "Value from a following row", Category: CategoryWindow},
	{Name: "FIRST_VALUE", Signature: "FIRST_VALUE(expr) OVER (...)", Description: "First value in frame", Category: CategoryWindow},
	{Name: "LAST_VALUE", Signature: "LAST_VALUE(expr) OVER (...)", Description: "Last value in frame", Category: CategoryWindow},

	// Numeric
	{Name: "ABS", Signature: "ABS(x)", Description: "Absolute value", Category: CategoryNumeric},
	{Name: "ROUND", Signature: "ROUND(x [, digits])", Description: "Round to digits", Category: CategoryNumeric},
	{Name: "FLOOR", Signature: "FLOOR(x)", Description: "Round down", Category: CategoryNumeric},
	{Name: "CEIL", Signature: "CEIL(x)", Description: "Round up", Category: CategoryNumeric},
	{Name: "MOD", Signature: "MOD(a, b)", Description: "Remainder", Category: CategoryNumeric},
	{Name: "POWER", Signature: "POWER(x, y)", Description: "x raised to y", Category: CategoryNumeric},

	// String
	{Name: "LOWER", Signature: "LOWER(s)", Description: "Lower-case", Category: CategoryString},
	{Name: "UPPER", Signature: "UPPER(s)", Description: "Upper-case", Category: CategoryString},
	{Name: "TRIM", Signature: "TRIM(s)", Description: "Strip surrounding whitespace", Category: CategoryString},
	{Name: "LENGTH", Signature: "LENGTH(s)", Description: "Number of characters", Category: CategoryString},
	{Name: "SUBSTRING", Signature: "SUBSTRING(s, start [, len])", Description: "Extract substring", Category: CategoryString},
	{Name: "CONCAT", Signature: "CONCAT(s, ...)", Description: "Concatenate strings", Category: CategoryString},
	{Name: "REPLACE", Signature: "REPLACE(s, from, to)", Description: "Replace occurrences", Category: CategoryString},
	{Name: "LEFT", Signature: "LEFT(s, n)", Description: "Leftmost characters", Category: CategoryString},
	{Name: "RIGHT", Signature: "RIGHT(s, n)", Description: "Rightmost characters", Category: CategoryString},

	// Date
	{Name: "CURRENT_DATE", Signature: "CURRENT_DATE", Description: "Current date", Category: CategoryDate},
	{Name: "CURRENT_TIMESTAMP", Signature: "CURRENT_TIMESTAMP", Description: "Current timestamp", Category: CategoryDate},
	{Name: "DATE_TRUNC", Signature: "DATE_TRUNC(part, ts)", Description: "Truncate to precision", Category: CategoryDate},

	// Conditional
	{Name: "COALESCE", Signature: "COALESCE(a, b, ...)", Description: "First non-null argument", Category: CategoryConditional},
	{Name: "NULLIF", Signature: "NULLIF(a, b)", Description: "NULL if a equals b", Category: CategoryConditional},
	{Name: "IF", Signature: "IF(cond, a, b)", Description: "Inline conditional (MySQL, Hive)", Category: CategoryConditional},
}

// GetFunctionsByCategory returns all functions in a category.
func GetFunctionsByCategory(category FunctionCategory) []FunctionInfo {
	var result []FunctionInfo
	for _, fn := range Catalog {
		if fn.Category == category {
			result = append(result, fn)
		}
	}
	return result
}

// SearchFunctions returns functions matching a prefix (case-insensitive).
func SearchFunctions(prefix string) []FunctionInfo {
	if prefix == "" {
		return Catalog
	}

	var result []FunctionInfo
	upper := strings.ToUpper(prefix)
	for _, fn := range Catalog {
		if strings.HasPrefix(fn.Name, upper) {
			result = append(result, fn)
		}
	}
	return result
}

// CompletionWords returns builtin keywords and catalog function names,
// sorted and de-duplicated.
func CompletionWords() []string {
	set := make(map[string]bool)
	for _, kw := range token.Keywords() {
		set[kw] = true
	}
	for _, fn := range Catalog {
		set[fn.Name] = true
	}
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
