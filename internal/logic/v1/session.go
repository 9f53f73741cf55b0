package v1

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/liveem/livem-core/internal/core"
	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

const isoDate = "2006-01-02"

// SessionLogic is the session/streak tracker over the key-value store.
// Streak transitions fire only on sign-in and app-foreground events.
type SessionLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSessionLogic(ctx context.Context, core *core.Core) *SessionLogic {
	return &SessionLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *SessionLogic) getValue(key string) (string, bool, error) {
	value, err := l.core.Store().SessionKVStore().Get(l.ctx, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, errors.New("SessionLogic.getValue.SessionKVStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return value, true, nil
}

func (l *SessionLogic) IsSignedIn() (bool, error) {
	_, ok, err := l.getValue(types.SESSION_KEY_NAME)
	return ok, err
}

// SignIn stores the identity, fixes the join date on the first call only,
// then runs a streak update.
func (l *SessionLogic) SignIn(name, dob string) error {
	if name == "" {
		return errors.New("SessionLogic.SignIn.name", i18n.ERROR_INVALIDARGUMENT, fmt.Errorf("empty name")).Code(http.StatusBadRequest)
	}

	kv := l.core.Store().SessionKVStore()
	if err := kv.Set(l.ctx, types.SESSION_KEY_NAME, name); err != nil {
		return errors.New("SessionLogic.SignIn.SessionKVStore.Set.name", i18n.ERROR_INTERNAL, err)
	}
	if err := kv.Set(l.ctx, types.SESSION_KEY_DOB, dob); err != nil {
		return errors.New("SessionLogic.SignIn.SessionKVStore.Set.dob", i18n.ERROR_INTERNAL, err)
	}

	_, ok, err := l.getValue(types.SESSION_KEY_JOIN_DATE)
	if err != nil {
		return err
	}
	if !ok {
		now := l.core.Now().UnixMilli()
		if err := kv.Set(l.ctx, types.SESSION_KEY_JOIN_DATE, strconv.FormatInt(now, 10)); err != nil {
			return errors.New("SessionLogic.SignIn.SessionKVStore.Set.joinDate", i18n.ERROR_INTERNAL, err)
		}
	}

	return l.UpdateStreak()
}

func (l *SessionLogic) GetUser() (*types.UserProfile, error) {
	name, ok, err := l.getValue(types.SESSION_KEY_NAME)
	if err != nil || !ok {
		return nil, err
	}
	dob, ok, err := l.getValue(types.SESSION_KEY_DOB)
	if err != nil || !ok {
		return nil, err
	}

	streak, err := l.GetStreak()
	if err != nil {
		return nil, err
	}

	return &types.UserProfile{
		Name:   name,
		DOB:    dob,
		Streak: streak,
	}, nil
}

// GetJoinDate falls back to "now" when the field was never written.
func (l *SessionLogic) GetJoinDate() (int64, error) {
	raw, ok, err := l.getValue(types.SESSION_KEY_JOIN_DATE)
	if err != nil {
		return 0, err
	}
	if !ok {
		return l.core.Now().UnixMilli(), nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("SessionLogic.GetJoinDate.parse", i18n.ERROR_INTERNAL, err)
	}
	return ms, nil
}

func (l *SessionLogic) GetStreak() (int, error) {
	raw, ok, err := l.getValue(types.SESSION_KEY_STREAK)
	if err != nil || !ok {
		return 0, err
	}

	streak, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("SessionLogic.GetStreak.parse", i18n.ERROR_INTERNAL, err)
	}
	return streak, nil
}

func (l *SessionLogic) UpdateStreak() error {
	return l.UpdateStreakAt(l.core.Now())
}

// UpdateStreakAt runs the streak state machine for the given "now":
// no last-open date seeds streak 1; the next calendar day increments;
// a larger gap resets to 1; a same-day reopen, or a negative gap from
// clock skew, changes nothing.
func (l *SessionLogic) UpdateStreakAt(now time.Time) error {
	signedIn, err := l.IsSignedIn()
	if err != nil {
		return err
	}
	if !signedIn {
		return nil
	}

	today := now.In(l.core.Loc())

	lastOpenStr, ok, err := l.getValue(types.SESSION_KEY_LAST_OPEN)
	if err != nil {
		return err
	}
	if !ok {
		return l.saveStreak(today, 1)
	}

	lastOpen, err := time.ParseInLocation(isoDate, lastOpenStr, l.core.Loc())
	if err != nil {
		return errors.New("SessionLogic.UpdateStreakAt.parse", i18n.ERROR_INTERNAL, err)
	}

	streak, err := l.GetStreak()
	if err != nil {
		return err
	}

	daysBetween := utils.CivilDays(today) - utils.CivilDays(lastOpen)
	switch {
	case daysBetween <= 0:
		return nil
	case daysBetween == 1:
		return l.saveStreak(today, streak+1)
	default:
		return l.saveStreak(today, 1)
	}
}

func (l *SessionLogic) saveStreak(day time.Time, count int) error {
	kv := l.core.Store().SessionKVStore()
	if err := kv.Set(l.ctx, types.SESSION_KEY_LAST_OPEN, day.Format(isoDate)); err != nil {
		return errors.New("SessionLogic.saveStreak.SessionKVStore.Set.lastOpen", i18n.ERROR_INTERNAL, err)
	}
	if err := kv.Set(l.ctx, types.SESSION_KEY_STREAK, strconv.Itoa(count)); err != nil {
		return errors.New("SessionLogic.saveStreak.SessionKVStore.Set.streak", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// SignOut clears every session field, returning to "not signed in".
func (l *SessionLogic) SignOut() error {
	if err := l.core.Store().SessionKVStore().Clear(l.ctx); err != nil {
		return errors.New("SessionLogic.SignOut.SessionKVStore.Clear", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
