package qa

import (
	"fmt"

	"github.com/garyellow/academy-qabot-go/internal/knowledge"
)

// Responses are a small fixed set of shapes filled from the matched
// entity's display fields (title/name, never the raw keyword or id).
const (
	courseInfoTemplate     = "The %s course is taught by %s and runs for %s. %s"
	courseScheduleTemplate = "The %s course is scheduled for %s."
	staffInfoTemplate      = "%s is a %s in the %s department. Email: %s. Office: %s."
	staffHoursTemplate     = "%s has office hours at %s."
)

// NotFoundReply is returned whenever no entity matched or the intent has
// no matching stage (faq and general queries).
const NotFoundReply = "I don't have information about that. Please try asking about courses or staff."

// EmptyQueryPrompt is returned for empty or whitespace-only queries
// without running the pipeline.
const EmptyQueryPrompt = "Please ask me a question about courses or staff."

func renderCourseInfo(c knowledge.Course) string {
	return fmt.Sprintf(courseInfoTemplate, c.Title, c.Instructor, c.Duration, c.Description)
}

func renderCourseSchedule(c knowledge.Course) string {
	return fmt.Sprintf(courseScheduleTemplate, c.Title, c.Schedule)
}

func renderStaffInfo(m knowledge.StaffMember) string {
	return fmt.Sprintf(staffInfoTemplate, m.Name, m.Position, m.Department, m.Email, m.Office)
}

func renderStaffHours(m knowledge.StaffMember) string {
	return fmt.Sprintf(staffHoursTemplate, m.Name, m.OfficeHours)
}
