package gradebook_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
	"github.com/DrFaustest/Basic-grade-book/services/seed"
	"github.com/DrFaustest/Basic-grade-book/tests"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{79.99, "C"},
		{70, "C"},
		{69.99, "D"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
		{150, "A"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.pct), func(t *testing.T) {
			assert.Equal(t, tt.want, gradebook.LetterGrade(tt.pct, true))
		})
	}

	assert.Equal(t, "Not Graded", gradebook.LetterGrade(0, false))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   float64
		wantOk bool
	}{
		{
			name:   "ungraded assignments are left out",
			record: `{"HW1": {"value": 90, "max_points": 100}, "HW2": {"value": "Not Graded", "max_points": 100}}`,
			want:   90, wantOk: true,
		},
		{
			name:   "points are summed",
			record: `{"HW1": {"value": 45, "max_points": 50}, "HW2": {"value": 30, "max_points": 50}}`,
			want:   75, wantOk: true,
		},
		{
			name:   "rounded down",
			record: `{"HW1": {"value": 1, "max_points": 3}}`,
			want:   33.33, wantOk: true,
		},
		{
			name:   "rounded up",
			record: `{"HW1": {"value": 2, "max_points": 3}}`,
			want:   66.67, wantOk: true,
		},
		{
			name:   "zero",
			record: `{"HW1": {"value": 0, "max_points": 100}}`,
			want:   0, wantOk: true,
		},
		{
			name:   "over max points",
			record: `{"HW1": {"value": 150, "max_points": 100}}`,
			want:   150, wantOk: true,
		},
		{
			name:   "missing max points adds nothing to the total",
			record: `{"HW1": {"value": 10, "max_points": null}, "HW2": {"value": 8, "max_points": 10}}`,
			want:   180, wantOk: true,
		},
		{
			name:   "only missing max points",
			record: `{"HW1": {"value": 10, "max_points": null}}`,
		},
		{
			name:   "all ungraded",
			record: `{"HW1": {"value": "Not Graded", "max_points": 100}}`,
		},
		{
			name:   "no assignments",
			record: `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := gradebook.Decode([]byte(`{"Math101": {"Ann": ` + tt.record + `}}`))
			require.NoError(t, err)

			got, ok := gradebook.Percentage(doc["Math101"]["Ann"])
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ClassGrade(t *testing.T) {
	svc, _ := testutil.NewService(t, math101, testutil.AutoSync)

	pct, ok := svc.ClassGrade("Math101", "Ann")
	assert.True(t, ok)
	assert.Equal(t, 90.0, pct)

	pct, ok = svc.ClassGrade(" Math101 ", "Bob")
	assert.True(t, ok)
	assert.Equal(t, 73.33, pct)

	_, ok = svc.ClassGrade("Math101", "Zed")
	assert.False(t, ok)
	_, ok = svc.ClassGrade("History", "Ann")
	assert.False(t, ok)
}

func TestService_Report(t *testing.T) {
	svc, _ := testutil.NewService(t, math101, testutil.AutoSync)
	require.NoError(t, svc.AddStudent("Math101", "Cid"))

	assert.Equal(t, []gradebook.StudentReport{
		{Student: "Ann", Percentage: 90, Graded: true, Letter: "A"},
		{Student: "Bob", Percentage: 73.33, Graded: true, Letter: "C"},
		{Student: "Cid", Letter: "Not Graded"},
	}, svc.Report("Math101"))
	assert.Empty(t, svc.Report("Art"))
	assert.Empty(t, svc.Report("History"))
}

// in-cap scores always yield a percentage within [0, 100]
func TestService_ClassGrade_bounds(t *testing.T) {
	for s := int64(1); s <= 20; s++ {
		doc := seed.Generate(seed.Options{Course: "Math101", Students: 10, Assignments: 8, Seed: s})
		data, err := gradebook.Encode(doc)
		require.NoError(t, err)
		svc, _ := testutil.NewService(t, string(data), testutil.AutoSync)

		for student, rec := range doc["Math101"] {
			var graded bool
			for _, score := range rec {
				graded = graded || score.Value.IsGraded()
			}

			pct, ok := svc.ClassGrade("Math101", student)
			require.Equal(t, graded, ok, "seed %d, %s", s, student)
			if ok {
				assert.True(t, pct >= 0 && pct <= 100, "seed %d, %s: %v", s, student, pct)
			}
		}
	}
}
