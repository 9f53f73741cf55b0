package v1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
)

func Test_WorkoutLogSetsReplaceAll(t *testing.T) {
	core := newCore()
	logic := v1.NewWorkoutLogic(context.Background(), core)

	exercise, err := logic.AddExercise("Bench Press", []string{"chest", "triceps"}, "3x8")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "chest,triceps", exercise.Muscles)
	assert.False(t, exercise.IsCompleted)

	err = logic.LogSets(exercise.ID, []v1.LogSetArgs{
		{Weight: "60", Reps: "8"},
		{Weight: "65", Reps: "6"},
	})
	if err != nil {
		t.Fatal(err)
	}

	list, err := logic.ListExercises()
	if err != nil {
		t.Fatal(err)
	}
	if !assert.Len(t, list, 1) {
		t.FailNow()
	}
	assert.True(t, list[0].Exercise.IsCompleted)
	if assert.Len(t, list[0].Sets, 2) {
		assert.Equal(t, "60", list[0].Sets[0].Weight)
		assert.Equal(t, "65", list[0].Sets[1].Weight)
	}

	// logging again replaces the previous sets outright
	err = logic.LogSets(exercise.ID, []v1.LogSetArgs{{Weight: "70", Reps: "5"}})
	if err != nil {
		t.Fatal(err)
	}
	list, err = logic.ListExercises()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, list[0].Sets, 1) {
		assert.Equal(t, "70", list[0].Sets[0].Weight)
	}

	err = logic.LogSets("missing-id", nil)
	assert.Error(t, err)
}

func Test_WorkoutHistory(t *testing.T) {
	core := newCore()
	logic := v1.NewWorkoutLogic(context.Background(), core)

	done, err := logic.AddExercise("Squat", []string{"legs"}, "5x5")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := logic.AddExercise("Deadlift", []string{"back"}, "3x5"); err != nil {
		t.Fatal(err)
	}

	if err := logic.LogSets(done.ID, []v1.LogSetArgs{{Weight: "100", Reps: "5"}}); err != nil {
		t.Fatal(err)
	}

	history, err := logic.GetWorkoutHistory()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, history, 1) {
		assert.Equal(t, done.ID, history[0].Exercise.ID)
		assert.NotNil(t, history[0].Exercise.CompletedAt)
	}
}
