// Package data provides the static seed catalog for the application.
// These data are maintained manually and updated periodically.
package data

import "github.com/garyellow/academy-qabot-go/internal/knowledge"

// Catalog returns the built-in academy catalog: the course offerings,
// teaching staff, and FAQ entries the bot can answer about.
//
// Identifiers must stay lowercase tokens; the bot matches query keywords
// against them as substrings (e.g. "python" hits the python course,
// "smith" hits john_smith).
func Catalog() knowledge.Seed {
	return knowledge.Seed{
		Courses: []knowledge.Course{
			{
				ID:          "python",
				Title:       "Python Programming",
				Duration:    "8 weeks",
				Level:       "Beginner",
				Instructor:  "Dr. John Smith",
				Description: "Learn Python fundamentals including variables, loops, functions, and OOP",
				Schedule:    "Monday and Wednesday, 2:00 PM - 3:30 PM",
			},
			{
				ID:          "javascript",
				Title:       "JavaScript Web Development",
				Duration:    "10 weeks",
				Level:       "Intermediate",
				Instructor:  "Prof. Sarah Johnson",
				Description: "Master JavaScript for frontend and backend web development",
				Schedule:    "Tuesday and Thursday, 3:00 PM - 4:30 PM",
			},
			{
				ID:          "data_science",
				Title:       "Data Science and Machine Learning",
				Duration:    "12 weeks",
				Level:       "Advanced",
				Instructor:  "Dr. Emily Chen",
				Description: "Comprehensive course on data analysis, visualization, and ML algorithms",
				Schedule:    "Saturday, 10:00 AM - 12:00 PM",
			},
			{
				ID:          "web_design",
				Title:       "Web Design Fundamentals",
				Duration:    "6 weeks",
				Level:       "Beginner",
				Instructor:  "Alex Martinez",
				Description: "Learn HTML, CSS, and responsive design principles",
				Schedule:    "Friday, 4:00 PM - 5:30 PM",
			},
		},

		Staff: []knowledge.StaffMember{
			{
				ID:          "john_smith",
				Name:        "Dr. John Smith",
				Position:    "Senior Instructor",
				Department:  "Computer Science",
				Email:       "john.smith@academy.edu",
				Office:      "Building A, Room 205",
				OfficeHours: "Monday and Wednesday, 4:00 PM - 5:00 PM",
			},
			{
				ID:          "sarah_johnson",
				Name:        "Prof. Sarah Johnson",
				Position:    "Instructor",
				Department:  "Web Technologies",
				Email:       "sarah.johnson@academy.edu",
				Office:      "Building B, Room 101",
				OfficeHours: "Tuesday and Thursday, 5:00 PM - 6:00 PM",
			},
			{
				ID:          "emily_chen",
				Name:        "Dr. Emily Chen",
				Position:    "Lead Instructor",
				Department:  "Data Science",
				Email:       "emily.chen@academy.edu",
				Office:      "Building C, Room 310",
				OfficeHours: "Saturday, 1:00 PM - 2:00 PM",
			},
		},

		FAQs: []knowledge.FAQEntry{
			{
				Topic:    "enrollment",
				Question: "How do I enroll in a course?",
				Answer:   "Visit the registration portal on our website and fill out the enrollment form.",
			},
			{
				Topic:    "prerequisite",
				Question: "Are there prerequisites for courses?",
				Answer:   "Beginner courses have no prerequisites. Intermediate and Advanced courses require prior knowledge.",
			},
			{
				Topic:    "certificate",
				Question: "Do I get a certificate after completion?",
				Answer:   "Yes, you receive a certificate of completion after successfully finishing the course.",
			},
			{
				Topic:    "refund",
				Question: "What is the refund policy?",
				Answer:   "We offer a 7-day refund policy from the enrollment date.",
			},
		},
	}
}
