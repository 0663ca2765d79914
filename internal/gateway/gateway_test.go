package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
	"github.com/drcDRt/tmc-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAccount = domain.NewAccount("http://a.test", "alice", "secret")

func TestGatewayWithoutCoreIsUnconfigured(t *testing.T) {
	t.Parallel()

	gw := New(nil, time.Second, nil)

	assert.True(t, gw.HasConnection(context.Background()))
	assert.False(t, gw.TryLogin(context.Background(), testAccount))

	_, err := gw.ListCourses(context.Background(), testAccount, nil).Await(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnconfigured)

	_, err = gw.GetCourseDetails(context.Background(), testAccount, domain.NewCourse("java"), nil).Await(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnconfigured)
}

func TestGatewayHasConnection(t *testing.T) {
	t.Parallel()

	core := mocks.NewMockCore(t)
	core.EXPECT().Ping(mock.Anything).Return(nil).Once()
	core.EXPECT().Ping(mock.Anything).Return(errors.New("dial tcp: no route")).Once()
	gw := New(core, time.Second, nil)

	assert.True(t, gw.HasConnection(context.Background()))
	assert.False(t, gw.HasConnection(context.Background()))
}

func TestGatewayTryLogin(t *testing.T) {
	t.Parallel()

	core := mocks.NewMockCore(t)
	core.EXPECT().Authenticate(mock.Anything, testAccount).Return(nil).Once()
	core.EXPECT().Authenticate(mock.Anything, testAccount).Return(domain.ErrAuth).Once()
	gw := New(core, time.Second, nil)

	assert.True(t, gw.TryLogin(context.Background(), testAccount))
	assert.False(t, gw.TryLogin(context.Background(), testAccount))
}

func TestGatewayListCoursesResolvesFuture(t *testing.T) {
	t.Parallel()

	core := mocks.NewMockCore(t)
	courses := []domain.Course{domain.NewCourse("java"), domain.NewCourse("python")}
	core.EXPECT().ListCourses(mock.Anything, testAccount, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Account, observer ports.ProgressObserver) ([]domain.Course, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			observer.Progress("Fetching courses", 0.5)
			return courses, nil
		}).Once()

	got, err := New(core, time.Second, nil).ListCourses(context.Background(), testAccount, nil).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, courses, got)
}

func TestGatewayClassifiesTimeoutAsConnectivity(t *testing.T) {
	t.Parallel()

	core := mocks.NewMockCore(t)
	core.EXPECT().ListCourses(mock.Anything, testAccount, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Account, _ ports.ProgressObserver) ([]domain.Course, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	_, err := New(core, 10*time.Millisecond, nil).ListCourses(context.Background(), testAccount, nil).Await(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConnectivity)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGatewayGetCourseDetailsKeepsInputUntouched(t *testing.T) {
	t.Parallel()

	core := mocks.NewMockCore(t)
	input := domain.NewCourse("java")
	core.EXPECT().GetCourseDetails(mock.Anything, testAccount, input, mock.Anything).
		Return(input.WithExercises([]domain.Exercise{{Name: "e1"}}), nil).Once()

	got, err := New(core, time.Second, nil).GetCourseDetails(context.Background(), testAccount, input, nil).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, got.ExerciseNames())
	assert.Empty(t, input.Exercises)
}

func TestGatewayCorePanicResolvesWithError(t *testing.T) {
	t.Parallel()

	core := mocks.NewMockCore(t)
	core.EXPECT().GetCourseDetails(mock.Anything, testAccount, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Account, domain.Course, ports.ProgressObserver) (domain.Course, error) {
			panic("boom")
		}).Once()

	_, err := New(core, time.Second, nil).GetCourseDetails(context.Background(), testAccount, domain.NewCourse("java"), nil).Await(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
}
