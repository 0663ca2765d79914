package commands

import (
	"context"
	"errors"

	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/session"
)

const (
	msgUnconfigured   = "Backend is not configured."
	msgCourseNotFound = "Course doesn't exist"
)

type Courses struct{}

func NewCourses() Courses {
	return Courses{}
}

func (Courses) Name() string {
	return "courses"
}

func (Courses) Short() string {
	return "List the courses of every logged-in server"
}

func (Courses) Scope() dispatch.Scope {
	return dispatch.ScopeEach
}

func (Courses) RequiredFields() []dispatch.FieldSpec {
	return []dispatch.FieldSpec{
		{Name: fieldCourse, Positional: true},
	}
}

func (Courses) Execute(ctx context.Context, sc *session.Context, args dispatch.Args) error {
	if name := args.Get(fieldCourse); name != "" {
		course, lookup, err := sc.FindCourse(ctx, name)
		switch {
		case lookup == domain.LookupUnconfigured:
			sc.IO().Println(msgUnconfigured)
		case err != nil:
			return err
		case lookup == domain.LookupNotFound:
			sc.IO().Println(msgCourseNotFound)
		default:
			sc.IO().Println(course.Name)
		}
		return nil
	}

	courses, err := sc.ListCourses(ctx)
	if errors.Is(err, domain.ErrUnconfigured) {
		sc.IO().Println(msgUnconfigured)
		return nil
	}
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		sc.IO().Println("No courses found")
		return nil
	}
	sc.IO().Printf("Found %d courses\n", len(courses))

	for _, course := range courses {
		sc.IO().Println(course.Name)
	}

	return nil
}
