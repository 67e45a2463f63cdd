// Package countries provides the static country-dial-code reference list
// and the filter behind the registration form's selector.
package countries

import "strings"

// Filter returns the entries matching query: a case-insensitive substring
// of the country name, or a numeric prefix of the dial code (a leading "+"
// on the query is optional). An empty query returns the whole list.
func Filter(query string) []Country {
	q := strings.TrimSpace(query)
	if q == "" {
		out := make([]Country, len(All))
		copy(out, All)
		return out
	}
	nameQ := strings.ToLower(q)
	dialQ := q
	if !strings.HasPrefix(dialQ, "+") {
		dialQ = "+" + dialQ
	}

	var out []Country
	for _, c := range All {
		if strings.Contains(strings.ToLower(c.Name), nameQ) || strings.HasPrefix(c.DialCode, dialQ) {
			out = append(out, c)
		}
	}
	return out
}
