package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_GenRecordID(t *testing.T) {
	a := GenRecordID()
	b := GenRecordID()
	assert.NotEqual(t, a, b)
	t.Log(a, len(a))
}

func Test_StripRichText(t *testing.T) {
	assert.Equal(t, "Hello World", StripRichText("<p>Hello <b>World</b></p>"))
	assert.Equal(t, "A & B", StripRichText("A &amp; B"))
	assert.Equal(t, "a b", StripRichText("  a&nbsp;b  "))
	assert.Equal(t, "", StripRichText("<p><br></p>"))
	assert.Equal(t, "", StripRichText(""))
}

func Test_TruncateRunes(t *testing.T) {
	assert.Equal(t, "hello", TruncateRunes("hello", 10))
	assert.Equal(t, "hel", TruncateRunes("hello", 3))
	assert.Equal(t, "日本", TruncateRunes("日本語", 2))
}

func Test_DayWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, 3, 15, 14, 30, 0, 0, loc)
	start, end := DayWindow(now)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc).UnixMilli(), start)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 0, loc).UnixMilli(), end)

	// midnight itself is inside the window
	assert.LessOrEqual(t, start, time.Date(2025, 3, 15, 0, 0, 0, 0, loc).UnixMilli())
	assert.GreaterOrEqual(t, end, time.Date(2025, 3, 15, 23, 59, 59, 0, loc).UnixMilli())
}

func Test_CivilDays(t *testing.T) {
	loc := time.UTC
	d1 := CivilDays(time.Date(2025, 1, 1, 0, 0, 1, 0, loc))
	d2 := CivilDays(time.Date(2025, 1, 1, 23, 59, 59, 0, loc))
	d3 := CivilDays(time.Date(2025, 1, 2, 0, 0, 0, 0, loc))

	assert.Equal(t, d1, d2)
	assert.Equal(t, int64(1), d3-d1)
}

func Test_FormatDate(t *testing.T) {
	loc := time.UTC
	ms := time.Date(2025, 7, 4, 10, 0, 0, 0, loc).UnixMilli()
	assert.Equal(t, "2025-07-04", FormatDate(ms, loc))
}
