package domain

type Exercise struct {
	Name string
}

type Course struct {
	Name      string
	Exercises []Exercise
}

func NewCourse(name string) Course {
	return Course{Name: name}
}

// WithExercises returns a copy of the course holding its own exercise slice.
func (c Course) WithExercises(exercises []Exercise) Course {
	copied := make([]Exercise, len(exercises))
	copy(copied, exercises)

	return Course{Name: c.Name, Exercises: copied}
}

func (c Course) ExerciseNames() []string {
	names := make([]string, 0, len(c.Exercises))
	for _, exercise := range c.Exercises {
		names = append(names, exercise.Name)
	}

	return names
}

// CourseInfo is the course bound to a local workspace.
type CourseInfo struct {
	Account      Account
	ActiveCourse *Course
}

func NewCourseInfo(account Account, course *Course) *CourseInfo {
	return &CourseInfo{Account: account, ActiveCourse: course}
}

func (i *CourseInfo) CourseName() string {
	if i == nil || i.ActiveCourse == nil {
		return ""
	}

	return i.ActiveCourse.Name
}

type Lookup int

const (
	LookupUnconfigured Lookup = iota
	LookupNotFound
	LookupFound
)

func (l Lookup) String() string {
	switch l {
	case LookupUnconfigured:
		return "unconfigured"
	case LookupNotFound:
		return "not_found"
	case LookupFound:
		return "found"
	default:
		return "unknown"
	}
}
