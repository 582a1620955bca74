package knowledge

// ID is a normalized (lowercase, trimmed) record identifier.
// All store lookups normalize their input before comparing against IDs.
type ID string

// Course represents a course record
type Course struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Level       string `json:"level"` // Beginner, Intermediate, Advanced (open set)
	Instructor  string `json:"instructor"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
}

// StaffMember represents a staff record
type StaffMember struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	Email       string `json:"email"`
	Office      string `json:"office"`
	OfficeHours string `json:"office_hours"`
}

// FAQEntry represents a frequently asked question keyed by topic.
// FAQ data is carried in the store as reference data for hosts; the query
// pipeline does not consult it (faq questions fall through to not-found).
type FAQEntry struct {
	Topic    ID     `json:"topic"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Seed is the construction-time dataset for a Store.
type Seed struct {
	Courses []Course
	Staff   []StaffMember
	FAQs    []FAQEntry
}
