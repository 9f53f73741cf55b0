package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/pkg/types"
)

func Test_SignInLifecycle(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewSessionLogic(ctx, core)

	signedIn, err := logic.IsSignedIn()
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, signedIn)

	user, err := logic.GetUser()
	if err != nil {
		t.Fatal(err)
	}
	assert.Nil(t, user)

	if err := logic.SignIn("", "1990-05-01"); err == nil {
		t.Fatal("expected empty name to be rejected")
	}

	if err := logic.SignIn("Ada", "1990-05-01"); err != nil {
		t.Fatal(err)
	}

	signedIn, err = logic.IsSignedIn()
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, signedIn)

	user, err = logic.GetUser()
	if err != nil {
		t.Fatal(err)
	}
	if assert.NotNil(t, user) {
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "1990-05-01", user.DOB)
		assert.Equal(t, 1, user.Streak)
	}

	// join date is written once and survives a second sign in
	join1, err := logic.GetJoinDate()
	if err != nil {
		t.Fatal(err)
	}
	if err := logic.SignIn("Ada Again", "1990-05-01"); err != nil {
		t.Fatal(err)
	}
	join2, err := logic.GetJoinDate()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, join1, join2)

	if err := logic.SignOut(); err != nil {
		t.Fatal(err)
	}
	signedIn, err = logic.IsSignedIn()
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, signedIn)
}

func Test_StreakTransitions(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewSessionLogic(ctx, core)

	if err := logic.SignIn("Ada", ""); err != nil {
		t.Fatal(err)
	}

	kv := core.Store().SessionKVStore()
	set := func(lastOpen string, streak string) {
		if err := kv.Set(ctx, types.SESSION_KEY_LAST_OPEN, lastOpen); err != nil {
			t.Fatal(err)
		}
		if err := kv.Set(ctx, types.SESSION_KEY_STREAK, streak); err != nil {
			t.Fatal(err)
		}
	}
	streak := func() int {
		s, err := logic.GetStreak()
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	// consecutive day increments
	set("2025-06-01", "3")
	if err := logic.UpdateStreakAt(time.Date(2025, 6, 2, 9, 30, 0, 0, core.Loc())); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 4, streak())

	// same day reopen is a no-op
	if err := logic.UpdateStreakAt(time.Date(2025, 6, 2, 23, 0, 0, 0, core.Loc())); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 4, streak())

	// a gap resets to one
	if err := logic.UpdateStreakAt(time.Date(2025, 6, 5, 8, 0, 0, 0, core.Loc())); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 1, streak())

	// clock moving backwards changes nothing
	set("2025-06-05", "7")
	if err := logic.UpdateStreakAt(time.Date(2025, 6, 3, 8, 0, 0, 0, core.Loc())); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 7, streak())
}

func Test_StreakIgnoredWhenSignedOut(t *testing.T) {
	core := newCore()
	logic := v1.NewSessionLogic(context.Background(), core)

	if err := logic.UpdateStreakAt(time.Date(2025, 6, 2, 9, 0, 0, 0, core.Loc())); err != nil {
		t.Fatal(err)
	}
	streak, err := logic.GetStreak()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, streak)
}
