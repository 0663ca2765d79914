package commands

import (
	"context"
	"errors"

	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/session"
)

type ListExercises struct{}

func NewListExercises() ListExercises {
	return ListExercises{}
}

func (ListExercises) Name() string {
	return "list-exercises"
}

func (ListExercises) Short() string {
	return "List the exercises of a course"
}

func (ListExercises) Scope() dispatch.Scope {
	return dispatch.ScopeActive
}

func (ListExercises) RequiredFields() []dispatch.FieldSpec {
	return []dispatch.FieldSpec{
		{
			Name:           fieldCourse,
			Positional:     true,
			Required:       true,
			MissingMessage: "No course specified",
			Stored: func(sc *session.Context) string {
				return sc.CourseInfo().CourseName()
			},
		},
	}
}

func (ListExercises) Execute(ctx context.Context, sc *session.Context, args dispatch.Args) error {
	name := args.Get(fieldCourse)

	course, lookup, err := sc.FindCourse(ctx, name)
	switch {
	case lookup == domain.LookupUnconfigured:
		sc.IO().Println(msgUnconfigured)
		return nil
	case err != nil:
		return err
	case lookup == domain.LookupNotFound:
		sc.IO().Println(msgCourseNotFound)
		return nil
	}

	detailed, err := sc.CourseDetails(ctx, course)
	if errors.Is(err, domain.ErrUnconfigured) {
		sc.IO().Println(msgUnconfigured)
		return nil
	}
	if err != nil {
		return err
	}

	if len(detailed.Exercises) == 0 {
		sc.IO().Printf("Course %s doesn't have any exercises.\n", detailed.Name)
		return nil
	}

	for _, exercise := range detailed.Exercises {
		sc.IO().Println(exercise.Name)
	}

	return nil
}
