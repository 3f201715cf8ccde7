// Package ordering resolves DRF-style ordering params: "field" ascending,
// "-field" descending. Unknown fields resolve to the store default rather
// than an error.
package ordering

import "strings"

func Parse(ordering string, resolve func(string) (string, bool)) (col string, desc bool) {
	if ordering == "" {
		return "", false
	}
	d := strings.HasPrefix(ordering, "-")
	c, ok := resolve(strings.TrimPrefix(ordering, "-"))
	if !ok {
		return "", false
	}
	return c, d
}
