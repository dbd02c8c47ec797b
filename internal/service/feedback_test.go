package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thaihung204/GENTRY-BE/internal/repo"
)

func newFeedbackSvc(t *testing.T) *FeedbackService {
	t.Helper()
	return NewFeedbackService(repo.NewFeedbackRepo(newTestDB(t)), testLogger())
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc := newFeedbackSvc(t)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Submit("", FeedbackInput{Name: "A", Rating: rating, Content: "x"})
		assert.ErrorIs(t, err, ErrValidation, "rating %d", rating)
	}

	_, err := svc.Submit("", FeedbackInput{Name: "  ", Rating: 3, Content: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	// 匿名提交合法
	f, err := svc.Submit("", FeedbackInput{Name: "Anon", Rating: 5, Content: "great app"})
	require.NoError(t, err)
	assert.Empty(t, f.UserID)
	assert.True(t, f.IsVisible)
}

func TestFeedbackVisibility(t *testing.T) {
	svc := newFeedbackSvc(t)

	a, err := svc.Submit("u1", FeedbackInput{Name: "A", Rating: 5, Content: "love it"})
	require.NoError(t, err)
	_, err = svc.Submit("u2", FeedbackInput{Name: "B", Rating: 1, Content: "meh"})
	require.NoError(t, err)

	require.NoError(t, svc.SetVisibility(a.ID, false, "admin-1"))

	visible, err := svc.ListVisible(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, visible.Total)

	all, err := svc.ListAll(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)

	assert.ErrorIs(t, svc.SetVisibility("missing-id", true, "admin-1"), ErrNotFound)
}

func TestFeedbackStatistics(t *testing.T) {
	svc := newFeedbackSvc(t)

	var hiddenID string
	for i, rating := range []int{5, 5, 4, 3, 1} {
		f, err := svc.Submit("", FeedbackInput{Name: "N", Rating: rating, Content: "c"})
		require.NoError(t, err)
		if i == 4 {
			hiddenID = f.ID
		}
	}
	require.NoError(t, svc.SetVisibility(hiddenID, false, "admin-1"))

	st, err := svc.Statistics()
	require.NoError(t, err)
	assert.EqualValues(t, 5, st.Total)
	assert.EqualValues(t, 4, st.Visible)
	assert.EqualValues(t, 1, st.Hidden)
	assert.InDelta(t, 3.6, st.AverageRating, 1e-9) // (5+5+4+3+1)/5
	assert.EqualValues(t, 2, st.Distribution[5])
	assert.EqualValues(t, 1, st.Distribution[4])
	assert.EqualValues(t, 1, st.Distribution[3])
	assert.EqualValues(t, 0, st.Distribution[2])
	assert.EqualValues(t, 1, st.Distribution[1])
}

func TestFeedbackHardDelete(t *testing.T) {
	svc := newFeedbackSvc(t)

	f, err := svc.Submit("", FeedbackInput{Name: "N", Rating: 2, Content: "c"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(f.ID))

	st, err := svc.Statistics()
	require.NoError(t, err)
	assert.EqualValues(t, 0, st.Total)

	assert.ErrorIs(t, svc.Delete(f.ID), ErrNotFound)
}
