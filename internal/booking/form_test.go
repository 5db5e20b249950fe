package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traveler(first string) TravelerDetail {
	return TravelerDetail{
		FirstName:   first,
		LastName:    "Doe",
		DateOfBirth: "1990-05-01",
		Nationality: "Swiss",
	}
}

func TestResizeTravelers_LengthFollowsCount(t *testing.T) {
	var list []TravelerDetail
	for n := 1; n <= MaxTravelers; n++ {
		list = ResizeTravelers(list, n)
		assert.Len(t, list, n-1, "count %d", n)
	}
	for n := MaxTravelers; n >= 1; n-- {
		list = ResizeTravelers(list, n)
		assert.Len(t, list, n-1, "count %d", n)
	}
}

func TestResizeTravelers_NonPositiveCount(t *testing.T) {
	list := []TravelerDetail{traveler("a"), traveler("b")}

	assert.Empty(t, ResizeTravelers(list, 0))
	assert.Empty(t, ResizeTravelers(list, -3))
	assert.NotNil(t, ResizeTravelers(nil, 1))
}

func TestResizeTravelers_CountAboveLimitIsClamped(t *testing.T) {
	for _, count := range []int{MaxTravelers + 1, 1 << 30} {
		list := ResizeTravelers([]TravelerDetail{traveler("a")}, count)
		require.Len(t, list, MaxTravelers-1, "count %d", count)
		assert.Equal(t, "a", list[0].FirstName)
	}
}

func TestResizeTravelers_GrowAppendsBlankRecords(t *testing.T) {
	list := []TravelerDetail{traveler("Ana")}

	list = ResizeTravelers(list, 4)

	require.Len(t, list, 3)
	assert.Equal(t, traveler("Ana"), list[0])
	assert.Equal(t, TravelerDetail{}, list[1])
	assert.Equal(t, TravelerDetail{}, list[2])
}

func TestResizeTravelers_ShrinkKeepsHead(t *testing.T) {
	list := []TravelerDetail{traveler("a"), traveler("b"), traveler("c"), traveler("d")}
	original := CloneTravelers(list)

	shrunk := ResizeTravelers(list, 3)

	require.Len(t, shrunk, 2)
	assert.Equal(t, original[:2], shrunk)

	// growing again must not resurrect the removed tail
	regrown := ResizeTravelers(shrunk, 5)
	require.Len(t, regrown, 4)
	assert.Equal(t, original[:2], regrown[:2])
	assert.Equal(t, TravelerDetail{}, regrown[2])
	assert.Equal(t, TravelerDetail{}, regrown[3])
	assert.Equal(t, original, list, "caller's slice must be left intact")
}

func TestForm_SetTravelerCount(t *testing.T) {
	f := Form{TravelerDetails: []TravelerDetail{traveler("a")}}

	f.SetTravelerCount(3)
	assert.Equal(t, 3, f.NumberOfTravelers)
	assert.Len(t, f.TravelerDetails, 2)

	f.SetTravelerCount(1)
	assert.Equal(t, 1, f.NumberOfTravelers)
	assert.Empty(t, f.TravelerDetails)
}

func TestTotalPrice(t *testing.T) {
	for n := MinTravelers; n <= MaxTravelers; n++ {
		assert.Equal(t, 2499*float64(n), TotalPrice(2499, n), "count %d", n)
	}
	assert.InDelta(t, 59.97, TotalPrice(19.99, 3), 1e-9)
}

func TestEndDate(t *testing.T) {
	cases := []struct {
		start    string
		duration int
		want     string
	}{
		{"2024-01-30", 3, "2024-02-02"},
		{"2024-02-27", 3, "2024-03-01"},
		{"2023-02-27", 3, "2023-03-02"},
		{"2024-12-30", 7, "2025-01-06"},
		{"2024-06-15", 0, "2024-06-15"},
	}

	for _, tc := range cases {
		start, err := ParseDate(tc.start)
		require.NoError(t, err)
		assert.Equal(t, tc.want, FormatDate(EndDate(start, tc.duration)), tc.start)
	}
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("30/01/2024")
	assert.Error(t, err)
}

func TestDraft_ApplyResizesTravelers(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	d := NewDraft("dest-1", ContactInfo{Name: "Jo Doe", Email: "jo@example.com"}, today)

	assert.Equal(t, "2025-03-10", d.StartDate)
	assert.Equal(t, 1, d.NumberOfTravelers)
	assert.Empty(t, d.TravelerDetails)

	three := 3
	d.Apply(DraftUpdate{NumberOfTravelers: &three})
	require.Len(t, d.TravelerDetails, 2)

	d.TravelerDetails[0] = traveler("kept")
	two := 2
	d.Apply(DraftUpdate{NumberOfTravelers: &two})
	require.Len(t, d.TravelerDetails, 1)
	assert.Equal(t, "kept", d.TravelerDetails[0].FirstName)

	start := "2025-04-01"
	d.Apply(DraftUpdate{StartDate: &start})
	assert.Equal(t, "2025-04-01", d.StartDate)
	assert.Equal(t, "Jo Doe", d.ContactInfo.Name)
	assert.Len(t, d.TravelerDetails, 1)
}

func TestDraft_ApplyTravelerListIsTrimmedToCount(t *testing.T) {
	d := NewDraft("dest-1", ContactInfo{}, time.Now())
	list := []TravelerDetail{traveler("a"), traveler("b"), traveler("c")}

	d.Apply(DraftUpdate{TravelerDetails: &list})

	assert.Empty(t, d.TravelerDetails)
	assert.Len(t, list, 3)
}

func TestDraft_CloneIsDeep(t *testing.T) {
	d := Draft{Form: Form{NumberOfTravelers: 2, TravelerDetails: []TravelerDetail{traveler("a")}}}

	c := d.Clone()
	c.TravelerDetails[0].FirstName = "changed"

	assert.Equal(t, "a", d.TravelerDetails[0].FirstName)
}
