package types

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Operator string

const (
	OpEq  Operator = "eq"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
	OpIn  Operator = "in"
)

const (
	DefaultPage  int = 1
	DefaultLimit int = 25
	MaxLimit     int = 100
)

type Filter struct {
	Field string
	Op    Operator
	Value any
}

type SortField struct {
	Field string
	Desc  bool
}

type QueryParams struct {
	Filters []Filter
	Select  []string
	Sort    []SortField
	Page    int
	Limit   int
}

func (q QueryParams) Skip() int {
	return StartIndex(q.Page, q.Limit)
}

var reservedParams = []string{"select", "sort", "page", "limit"}

var DefaultSort = []SortField{{Field: "createdAt", Desc: true}}

var (
	bracketOperator = regexp.MustCompile(`^(.+)\[(gt|gte|lt|lte|in)\]$`)
	suffixOperator  = regexp.MustCompile(`^(.+)_(gt|gte|lt|lte|in)$`)
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
	kindBool
	kindTime
)

var bootcampFields = map[string]fieldKind{
	"_id":                       kindString,
	"name":                      kindString,
	"slug":                      kindString,
	"description":               kindString,
	"website":                   kindString,
	"phone":                     kindString,
	"email":                     kindString,
	"address":                   kindString,
	"careers":                   kindString,
	"photo":                     kindString,
	"location.formattedAddress": kindString,
	"location.street":           kindString,
	"location.city":             kindString,
	"location.state":            kindString,
	"location.zipcode":          kindString,
	"location.country":          kindString,
	"location.coordinates":      kindNumber,
	"averageRating":             kindNumber,
	"averageCost":               kindNumber,
	"housing":                   kindBool,
	"jobAssistance":             kindBool,
	"jobGuarantee":              kindBool,
	"acceptGi":                  kindBool,
	"createdAt":                 kindTime,
}

// ParseQuery turns query string parameters into typed query parameters. Filter keys
// may carry an operator either as field[op] or as field_op. Keys that do not name a
// bootcamp field are ignored.
func ParseQuery(params url.Values) QueryParams {
	q := QueryParams{
		Page:  positiveIntOrDefault(params.Get("page"), DefaultPage),
		Limit: positiveIntOrDefault(params.Get("limit"), DefaultLimit),
		Sort:  parseSort(params.Get("sort")),
	}

	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	if last := LastPage(q.Limit); q.Page > last {
		q.Page = last
	}

	if s := params.Get("select"); s != "" {
		q.Select = parseSelect(s)
	}

	keys := lo.Filter(lo.Keys(params), func(k string, _ int) bool {
		return !lo.Contains(reservedParams, k)
	})
	sort.Strings(keys)

	for _, key := range keys {
		values := lo.Filter(params[key], func(v string, _ int) bool { return v != "" })
		if len(values) == 0 {
			continue
		}

		field, op := splitOperator(key)
		kind, ok := bootcampFields[field]
		if !ok {
			continue
		}

		switch {
		case op == OpIn:
			var list []any
			for _, v := range values {
				for _, item := range strings.Split(v, ",") {
					if item = strings.TrimSpace(item); item != "" {
						list = append(list, convert(item, kind))
					}
				}
			}
			q.Filters = append(q.Filters, Filter{Field: field, Op: OpIn, Value: list})
		case op == OpEq && len(values) > 1:
			list := lo.Map(values, func(v string, _ int) any { return convert(v, kind) })
			q.Filters = append(q.Filters, Filter{Field: field, Op: OpIn, Value: list})
		default:
			q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: convert(values[0], kind)})
		}
	}

	return q
}

func splitOperator(key string) (string, Operator) {
	if m := bracketOperator.FindStringSubmatch(key); m != nil {
		return normalizeField(m[1]), Operator(m[2])
	}

	if m := suffixOperator.FindStringSubmatch(key); m != nil {
		return normalizeField(m[1]), Operator(m[2])
	}

	return normalizeField(key), OpEq
}

func normalizeField(field string) string {
	if field == "id" {
		return "_id"
	}
	return field
}

// isOperatorFree reports whether no dotted segment of field starts with $
func isOperatorFree(field string) bool {
	return !lo.ContainsBy(strings.Split(field, "."), func(segment string) bool {
		return strings.HasPrefix(segment, "$")
	})
}

func convert(value string, kind fieldKind) any {
	switch kind {
	case kindString:
		return value
	case kindNumber:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case kindBool:
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	case kindTime:
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", value); err == nil {
			return t
		}
	}

	return value
}

func parseSort(s string) []SortField {
	fields := lo.FilterMap(splitFields(s), func(f string, _ int) (SortField, bool) {
		desc := strings.HasPrefix(f, "-")
		f = normalizeField(strings.TrimLeft(f, "-+"))
		return SortField{Field: f, Desc: desc}, f != "" && isOperatorFree(f)
	})

	if len(fields) == 0 {
		return append([]SortField{}, DefaultSort...)
	}

	return fields
}

func splitFields(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(f string, _ int) (string, bool) {
		f = strings.TrimSpace(f)
		return f, f != ""
	})
}

// parseSelect keeps a leading - on fields that should be excluded from the result
func parseSelect(s string) []string {
	return lo.FilterMap(splitFields(s), func(f string, _ int) (string, bool) {
		prefix := ""
		if strings.HasPrefix(f, "-") {
			prefix = "-"
		}
		f = normalizeField(strings.TrimLeft(f, "-+"))
		return prefix + f, f != "" && isOperatorFree(f)
	})
}

// LastPage is the highest page whose start index and end still fit in an int
func LastPage(limit int) int {
	if limit <= 0 {
		return math.MaxInt
	}
	return (math.MaxInt-limit)/limit + 1
}

func positiveIntOrDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
