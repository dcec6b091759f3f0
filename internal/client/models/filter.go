package models

import "strings"

// Filter returns the students whose name contains query, ignoring case.
// Other fields are not searched. An empty query matches every record.
// The input slice is not modified and the order is preserved.
func Filter(students []Student, query string) []Student {
	q := strings.ToLower(query)
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
