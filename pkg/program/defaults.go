package program

// Course is a minimal course record used by the static defaults below.
type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CourseDefaults returns the built-in sample course list. The data is inert:
// nothing in the fetch or render flow consumes it, but examples and tests use
// it as a ready-made fixture.
func CourseDefaults() []Course {
	return []Course{
		{ID: "demo-101", Name: "Introduction to Demonstrations"},
		{ID: "demo-102", Name: "Intermediate Demonstrations"},
		{ID: "demo-201", Name: "Advanced Demonstrations"},
		{ID: "demo-301", Name: "Demonstration Capstone"},
	}
}
