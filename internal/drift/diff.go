package drift

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// MaxDifferences caps the number of reported locations.
const MaxDifferences = 20

// Diff returns JSON pointers of the locations where a and b differ,
// in sorted key order, up to limit entries.
func Diff(a, b any, limit int) []string {
	var res []string
	diff(&res, "", a, b, limit)
	return res
}

func diff(res *[]string, pointer string, a, b any, limit int) {
	if len(*res) >= limit {
		return
	}

	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			add(res, pointer, limit)
			return
		}
		for _, key := range unionKeys(av, bv) {
			next := pointer + "/" + escapePointer(key)
			ai, aok := av[key]
			bi, bok := bv[key]
			if aok != bok {
				add(res, next, limit)
				continue
			}
			diff(res, next, ai, bi, limit)
		}
	case []any:
		bv, ok := b.([]any)
		if !ok {
			add(res, pointer, limit)
			return
		}
		for i := 0; i < max(len(av), len(bv)); i++ {
			next := pointer + "/" + strconv.Itoa(i)
			if i >= len(av) || i >= len(bv) {
				add(res, next, limit)
				continue
			}
			diff(res, next, av[i], bv[i], limit)
		}
	default:
		if !reflect.DeepEqual(a, b) {
			add(res, pointer, limit)
		}
	}
}

func add(res *[]string, pointer string, limit int) {
	if len(*res) >= limit {
		return
	}
	if pointer == "" {
		pointer = "/"
	}
	*res = append(*res, pointer)
}

func unionKeys(a, b map[string]any) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func escapePointer(key string) string {
	key = strings.ReplaceAll(key, "~", "~0")
	return strings.ReplaceAll(key, "/", "~1")
}
