package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitr/coachdesk/internal/app/models"
)

func studentWithBirthday(id int64, name string, month time.Month, day int) *models.Student {
	dob := time.Date(2008, month, day, 0, 0, 0, 0, time.UTC)
	return &models.Student{ID: id, StudentName: name, DateOfBirth: &dob}
}

func TestRankUpcomingBirthdaysOrdersBySoonest(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	students := []*models.Student{
		studentWithBirthday(1, "august", time.August, 1),
		studentWithBirthday(2, "june", time.June, 15),
		studentWithBirthday(3, "july", time.July, 2),
	}

	ranked := RankUpcomingBirthdays(students, now)
	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].ID)
	assert.Equal(t, int64(3), ranked[1].ID)
	assert.Equal(t, int64(1), ranked[2].ID)
}

func TestRankUpcomingBirthdaysWrapsYearBoundary(t *testing.T) {
	// Late December: a birthday already past this year sorts after an
	// early January one.
	now := time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)

	students := []*models.Student{
		studentWithBirthday(1, "february", time.February, 20),
		studentWithBirthday(2, "december", time.December, 31),
		studentWithBirthday(3, "january", time.January, 2),
	}

	ranked := RankUpcomingBirthdays(students, now)
	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].ID, "dec 31 is tomorrow")
	assert.Equal(t, int64(3), ranked[1].ID, "jan 2 comes right after new year")
	assert.Equal(t, int64(1), ranked[2].ID)
}

func TestRankUpcomingBirthdaysTodayCountsAsUpcoming(t *testing.T) {
	now := time.Date(2026, 4, 18, 8, 0, 0, 0, time.UTC)

	students := []*models.Student{
		studentWithBirthday(1, "yesterday", time.April, 17),
		studentWithBirthday(2, "today", time.April, 18),
	}

	ranked := RankUpcomingBirthdays(students, now)
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[0].ID)
	assert.Equal(t, int64(1), ranked[1].ID)
}

func TestRankUpcomingBirthdaysCapsAtSeven(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	students := make([]*models.Student, 0, 10)
	for i := 1; i <= 10; i++ {
		students = append(students, studentWithBirthday(int64(i), "s", time.March, i))
	}

	ranked := RankUpcomingBirthdays(students, now)
	require.Len(t, ranked, maxBirthdayStudents)
	assert.Equal(t, int64(1), ranked[0].ID)
	assert.Equal(t, int64(7), ranked[6].ID)
}

func TestRankUpcomingBirthdaysSkipsMissingDates(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	students := []*models.Student{
		{ID: 1, StudentName: "no dob"},
		studentWithBirthday(2, "has dob", time.May, 5),
	}

	ranked := RankUpcomingBirthdays(students, now)
	require.Len(t, ranked, 1)
	assert.Equal(t, int64(2), ranked[0].ID)
}

func TestDedupeIDsKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, dedupeIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupeIDs(nil))
}
