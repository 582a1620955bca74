package qa

import (
	"regexp"
	"strings"
)

// Intent is the coarse category of what the user is asking about.
type Intent string

// The closed set of intents the classifier can produce.
const (
	IntentCourse      Intent = "course_query"
	IntentStaff       Intent = "staff_query"
	IntentSchedule    Intent = "schedule_query"
	IntentOfficeHours Intent = "office_hours_query"
	IntentFAQ         Intent = "faq_query"
	IntentGeneral     Intent = "general_query"
)

// intentRule pairs a trigger pattern with the intent it classifies.
type intentRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// intentRules is evaluated in order against the lowercased query; the
// first rule whose pattern matches anywhere in the text wins. The order is
// a compatibility contract, not a relevance ranking: a question mentioning
// both "course" and "office hour" classifies as IntentCourse because the
// course rule is tested first. One consequence is that office-hours
// questions phrased with "when" (or "time", "day") classify as
// IntentSchedule before the office-hours rule is ever reached.
var intentRules = []intentRule{
	{IntentCourse, regexp.MustCompile(`course|class|learn|study|take`)},
	{IntentStaff, regexp.MustCompile(`staff|instructor|professor|teacher|contact`)},
	{IntentSchedule, regexp.MustCompile(`schedule|time|when|day`)},
	{IntentOfficeHours, regexp.MustCompile(`office hour|meeting|availability`)},
	{IntentFAQ, regexp.MustCompile(`enroll|enlist|register|prerequisite|level|beginner|advanced`)},
}

// ClassifyIntent returns the intent of the query, first match wins.
// Queries matching no rule classify as IntentGeneral.
func ClassifyIntent(query string) Intent {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		if rule.pattern.MatchString(q) {
			return rule.intent
		}
	}
	return IntentGeneral
}
