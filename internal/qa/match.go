package qa

import (
	"strings"

	"github.com/garyellow/academy-qabot-go/internal/knowledge"
)

// matchCourse returns the first course whose identifier or lowercased
// title contains a keyword as a substring. Keywords are scanned in
// extraction order and courses in store order; the first hit across the
// double loop wins. Matching is intentionally substring-based with no
// relevance ranking, so which course wins for an ambiguous keyword is
// fixed by store order and must stay that way.
func matchCourse(store *knowledge.Store, keywords []string) (knowledge.Course, bool) {
	courses := store.GetAllCourses()
	for _, keyword := range keywords {
		for _, c := range courses {
			if strings.Contains(string(c.ID), keyword) ||
				strings.Contains(strings.ToLower(c.Title), keyword) {
				return c, true
			}
		}
	}
	return knowledge.Course{}, false
}

// matchStaff is the staff counterpart of matchCourse, testing keywords
// against the identifier and lowercased display name.
func matchStaff(store *knowledge.Store, keywords []string) (knowledge.StaffMember, bool) {
	staff := store.GetAllStaff()
	for _, keyword := range keywords {
		for _, m := range staff {
			if strings.Contains(string(m.ID), keyword) ||
				strings.Contains(strings.ToLower(m.Name), keyword) {
				return m, true
			}
		}
	}
	return knowledge.StaffMember{}, false
}
