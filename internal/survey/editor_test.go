package survey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/remix-pengkefei/ai-training-admin/internal/model"
	"github.com/remix-pengkefei/ai-training-admin/internal/survey"
)

func TestAddQuestionAppendsBlankQuestion(t *testing.T) {
	qs := survey.Apply(nil, survey.AddQuestion{})
	qs = survey.Apply(qs, survey.AddQuestion{})

	require.Len(t, qs, 2)
	require.NotEqual(t, qs[0].ID, qs[1].ID, "generated IDs must be distinct")
	for _, q := range qs {
		require.Empty(t, q.Question)
		require.Equal(t, []string{"", ""}, q.Options)
	}
}

func TestUpdateQuestionTextKeepsIdentity(t *testing.T) {
	qs := survey.Apply(nil, survey.AddQuestion{})
	id := qs[0].ID

	qs = survey.Apply(qs, survey.UpdateQuestionText{Index: 0, Text: "最喜欢的环节？"})
	require.Equal(t, "最喜欢的环节？", qs[0].Question)
	require.Equal(t, id, qs[0].ID)
	require.Equal(t, []string{"", ""}, qs[0].Options)
}

func TestRemoveQuestionOutOfRangeIsNoOp(t *testing.T) {
	qs := survey.Apply(nil, survey.AddQuestion{})

	for _, idx := range []int{-1, 1, 99} {
		got := survey.Apply(qs, survey.RemoveQuestion{Index: idx})
		require.Equal(t, qs, got)
	}

	got := survey.Apply(qs, survey.RemoveQuestion{Index: 0})
	require.Empty(t, got)
}

func TestRemoveOptionAtMinimumIsNoOp(t *testing.T) {
	qs := []model.SurveyQuestion{{ID: 1, Question: "Q", Options: []string{"A", "B"}}}

	got := survey.Apply(qs, survey.RemoveOption{Question: 0, Option: 0})
	require.Equal(t, qs, got)
	got = survey.Apply(qs, survey.RemoveOption{Question: 0, Option: 1})
	require.Equal(t, qs, got)
}

func TestAddThenRemoveOptionRoundTrips(t *testing.T) {
	qs := []model.SurveyQuestion{{ID: 1, Question: "Q", Options: []string{"A", "B"}}}

	grown := survey.Apply(qs, survey.AddOption{Question: 0})
	require.Equal(t, []string{"A", "B", ""}, grown[0].Options)

	back := survey.Apply(grown, survey.RemoveOption{Question: 0, Option: 2})
	require.Equal(t, qs, back)
}

func TestRemoveOptionShiftsOnlyOwnQuestion(t *testing.T) {
	qs := []model.SurveyQuestion{
		{ID: 1, Question: "Q1", Options: []string{"A", "B", "C"}},
		{ID: 2, Question: "Q2", Options: []string{"X", "Y", "Z"}},
	}

	got := survey.Apply(qs, survey.RemoveOption{Question: 0, Option: 1})
	require.Equal(t, []string{"A", "C"}, got[0].Options)
	require.Equal(t, []string{"X", "Y", "Z"}, got[1].Options)
	require.Equal(t, int64(2), got[1].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	qs := []model.SurveyQuestion{{ID: 1, Question: "Q", Options: []string{"A", "B", "C"}}}

	_ = survey.Apply(qs, survey.UpdateOption{Question: 0, Option: 0, Text: "changed"})
	_ = survey.Apply(qs, survey.RemoveOption{Question: 0, Option: 0})
	require.Equal(t, []string{"A", "B", "C"}, qs[0].Options)
}

func TestFilterSubmittable(t *testing.T) {
	qs := []model.SurveyQuestion{
		{ID: 1, Question: "", Options: []string{"a", ""}},
		{ID: 2, Question: "Q1", Options: []string{"", ""}},
		{ID: 3, Question: "Q2", Options: []string{"A", "B"}},
	}

	got := survey.FilterSubmittable(qs)
	require.Len(t, got, 1)
	require.Equal(t, int64(3), got[0].ID)
	require.Equal(t, "Q2", got[0].Question)
	require.Equal(t, []string{"A", "B"}, got[0].Options)
}

func TestFilterSubmittableTrimsWhitespace(t *testing.T) {
	qs := []model.SurveyQuestion{
		{ID: 1, Question: "   ", Options: []string{"A", "B"}},
		{ID: 2, Question: "Q", Options: []string{" ", "\t"}},
	}
	require.Empty(t, survey.FilterSubmittable(qs))
}
