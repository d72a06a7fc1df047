package domain

import "strings"

// Canonical target grades. The set is open: any non-blank grade is accepted.
const (
	GradePass            = "P"
	GradeCredit          = "C"
	GradeDistinction     = "D"
	GradeHighDistinction = "HD"
)

// Grades lists the canonical grades from lowest to highest.
func Grades() []string {
	return []string{GradePass, GradeCredit, GradeDistinction, GradeHighDistinction}
}

// SameGrade reports whether two grades match, ignoring case.
func SameGrade(a, b string) bool {
	return strings.EqualFold(a, b)
}
