// Package knowledge provides the immutable in-memory catalog of courses,
// staff, and FAQ entries that the query pipeline answers from.
//
// The store is constructed once from a seed dataset and never mutated
// afterwards, so it is safe to share across callers without locking.
// Record identifiers are validated and normalized at construction time;
// duplicates or empty fields fail NewStore, never a later lookup.
package knowledge

import (
	"fmt"

	domerrors "github.com/garyellow/academy-qabot-go/internal/errors"
	"github.com/garyellow/academy-qabot-go/internal/stringutil"
)

// Store is the immutable catalog. All accessors are pure reads; absence is
// reported with a boolean or an empty slice, never an error.
//
// Iteration order over courses and staff is the seed insertion order.
// The matching stage of the query pipeline depends on this: the first
// textual hit in store order wins, so iteration must be deterministic.
type Store struct {
	courses     map[ID]Course
	courseOrder []ID

	staff      map[ID]StaffMember
	staffOrder []ID

	faqs     map[ID]FAQEntry
	faqOrder []ID
}

// NewStore builds a Store from the seed dataset.
// It normalizes every identifier and rejects duplicate IDs and empty
// fields, returning a *errors.SeedError describing the first bad record.
func NewStore(seed Seed) (*Store, error) {
	s := &Store{
		courses: make(map[ID]Course, len(seed.Courses)),
		staff:   make(map[ID]StaffMember, len(seed.Staff)),
		faqs:    make(map[ID]FAQEntry, len(seed.FAQs)),
	}

	for _, c := range seed.Courses {
		c.ID = ID(stringutil.NormalizeID(string(c.ID)))
		if err := validateCourse(c); err != nil {
			return nil, err
		}
		if _, exists := s.courses[c.ID]; exists {
			return nil, domerrors.NewSeedError("course", string(c.ID), domerrors.ErrDuplicateID)
		}
		s.courses[c.ID] = c
		s.courseOrder = append(s.courseOrder, c.ID)
	}

	for _, m := range seed.Staff {
		m.ID = ID(stringutil.NormalizeID(string(m.ID)))
		if err := validateStaff(m); err != nil {
			return nil, err
		}
		if _, exists := s.staff[m.ID]; exists {
			return nil, domerrors.NewSeedError("staff", string(m.ID), domerrors.ErrDuplicateID)
		}
		s.staff[m.ID] = m
		s.staffOrder = append(s.staffOrder, m.ID)
	}

	for _, f := range seed.FAQs {
		f.Topic = ID(stringutil.NormalizeID(string(f.Topic)))
		if err := validateFAQ(f); err != nil {
			return nil, err
		}
		if _, exists := s.faqs[f.Topic]; exists {
			return nil, domerrors.NewSeedError("faq", string(f.Topic), domerrors.ErrDuplicateID)
		}
		s.faqs[f.Topic] = f
		s.faqOrder = append(s.faqOrder, f.Topic)
	}

	return s, nil
}

// MustNewStore is like NewStore but panics on an invalid seed.
// Intended for the static built-in catalog, where a bad seed is a
// programming error caught at process start.
func MustNewStore(seed Seed) *Store {
	s, err := NewStore(seed)
	if err != nil {
		panic(fmt.Sprintf("knowledge: invalid seed: %v", err))
	}
	return s
}

// GetCourse returns the course with the given identifier.
// The lookup is case-insensitive: the id is normalized first.
func (s *Store) GetCourse(id string) (Course, bool) {
	c, ok := s.courses[ID(stringutil.NormalizeID(id))]
	return c, ok
}

// GetAllCourses returns all courses in seed insertion order.
// The returned slice is a copy; callers may not mutate store state.
func (s *Store) GetAllCourses() []Course {
	out := make([]Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		out = append(out, s.courses[id])
	}
	return out
}

// GetStaff returns the staff member with the given identifier.
// The lookup is case-insensitive: the id is normalized first.
func (s *Store) GetStaff(id string) (StaffMember, bool) {
	m, ok := s.staff[ID(stringutil.NormalizeID(id))]
	return m, ok
}

// GetAllStaff returns all staff members in seed insertion order.
func (s *Store) GetAllStaff() []StaffMember {
	out := make([]StaffMember, 0, len(s.staffOrder))
	for _, id := range s.staffOrder {
		out = append(out, s.staff[id])
	}
	return out
}

// SearchCoursesByLevel returns courses whose level equals the given level,
// compared case-insensitively. An empty result is not an error.
func (s *Store) SearchCoursesByLevel(level string) []Course {
	var out []Course
	for _, id := range s.courseOrder {
		c := s.courses[id]
		if stringutil.NormalizeID(c.Level) == stringutil.NormalizeID(level) {
			out = append(out, c)
		}
	}
	return out
}

// SearchCoursesByInstructor returns courses whose instructor field contains
// the given substring, compared case-insensitively.
func (s *Store) SearchCoursesByInstructor(instructor string) []Course {
	var out []Course
	for _, id := range s.courseOrder {
		c := s.courses[id]
		if stringutil.ContainsFold(c.Instructor, instructor) {
			out = append(out, c)
		}
	}
	return out
}

// GetFAQ returns the FAQ entry for the given topic.
func (s *Store) GetFAQ(topic string) (FAQEntry, bool) {
	f, ok := s.faqs[ID(stringutil.NormalizeID(topic))]
	return f, ok
}

// GetAllFAQs returns all FAQ entries in seed insertion order.
func (s *Store) GetAllFAQs() []FAQEntry {
	out := make([]FAQEntry, 0, len(s.faqOrder))
	for _, id := range s.faqOrder {
		out = append(out, s.faqs[id])
	}
	return out
}

// CourseCount returns the number of courses in the catalog.
func (s *Store) CourseCount() int { return len(s.courseOrder) }

// StaffCount returns the number of staff members in the catalog.
func (s *Store) StaffCount() int { return len(s.staffOrder) }

// FAQCount returns the number of FAQ entries in the catalog.
func (s *Store) FAQCount() int { return len(s.faqOrder) }

func validateCourse(c Course) error {
	fields := map[string]string{
		"id":          string(c.ID),
		"title":       c.Title,
		"duration":    c.Duration,
		"level":       c.Level,
		"instructor":  c.Instructor,
		"description": c.Description,
		"schedule":    c.Schedule,
	}
	return validateFields("course", string(c.ID), fields)
}

func validateStaff(m StaffMember) error {
	fields := map[string]string{
		"id":           string(m.ID),
		"name":         m.Name,
		"position":     m.Position,
		"department":   m.Department,
		"email":        m.Email,
		"office":       m.Office,
		"office_hours": m.OfficeHours,
	}
	return validateFields("staff", string(m.ID), fields)
}

func validateFAQ(f FAQEntry) error {
	fields := map[string]string{
		"topic":    string(f.Topic),
		"question": f.Question,
		"answer":   f.Answer,
	}
	return validateFields("faq", string(f.Topic), fields)
}

func validateFields(kind, id string, fields map[string]string) error {
	for name, value := range fields {
		if stringutil.IsBlank(value) {
			return domerrors.NewSeedError(kind, id,
				fmt.Errorf("%w: %s", domerrors.ErrEmptyField, name))
		}
	}
	return nil
}
