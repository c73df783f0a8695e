package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_vocabulary "github.com/at-ishikawa/lexiquiz/internal/mocks/vocabulary"
	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

func TestCorrectScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{score: 500, want: 459},
		{score: 501, want: 460},
		{score: 1000, want: 919},
		{score: 1, want: 0},
		{score: 0, want: -1},
		{score: -100, want: -93},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CorrectScore(tt.score), "CorrectScore(%d)", tt.score)
	}
}

func TestIncorrectScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{score: 500, want: 521},
		{score: 300, want: 313},
		{score: 962, want: 1000},
		{score: 960, want: 999},
		{score: 1000, want: 1000},
		{score: 0, want: 1},
		{score: -10, want: -10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IncorrectScore(tt.score), "IncorrectScore(%d)", tt.score)
	}
}

func TestScores_areNotInverse(t *testing.T) {
	assert.NotEqual(t, 500, CorrectScore(IncorrectScore(500)))
	assert.NotEqual(t, 500, IncorrectScore(CorrectScore(500)))
}

func TestScoreUpdater_Apply(t *testing.T) {
	linkedID := int64(2)
	testedID := int64(1)

	tests := []struct {
		name       string
		resolution Resolution
		setupMock  func(repo *mock_vocabulary.MockRepository)
		want       ScoreChange
		wantErr    bool
	}{
		{
			name:       "correct answer",
			resolution: Resolution{Outcome: OutcomeResolved, Answer: &Answer{Text: "glad", Correct: true}},
			setupMock: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetByID(gomock.Any(), testedID).Return(vocabulary.Record{ID: testedID, Score: 500}, nil)
				repo.EXPECT().UpdateScore(gomock.Any(), testedID, 459).Return(nil)
			},
			want: ScoreChange{Tested: &ScoreDelta{RecordID: testedID, Before: 500, After: 459}},
		},
		{
			name:       "incorrect answer that is a saved word",
			resolution: Resolution{Outcome: OutcomeResolved, Answer: &Answer{Text: "sad", RecordID: &linkedID}},
			setupMock: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetByID(gomock.Any(), testedID).Return(vocabulary.Record{ID: testedID, Score: 500}, nil)
				repo.EXPECT().UpdateScore(gomock.Any(), testedID, 521).Return(nil)
				repo.EXPECT().GetByID(gomock.Any(), linkedID).Return(vocabulary.Record{ID: linkedID, Score: 300}, nil)
				repo.EXPECT().UpdateScore(gomock.Any(), linkedID, 313).Return(nil)
			},
			want: ScoreChange{
				Tested: &ScoreDelta{RecordID: testedID, Before: 500, After: 521},
				Linked: &ScoreDelta{RecordID: linkedID, Before: 300, After: 313},
			},
		},
		{
			name:       "incorrect answer linked to the tested word",
			resolution: Resolution{Outcome: OutcomeResolved, Answer: &Answer{Text: "happy", RecordID: &testedID}},
			setupMock: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetByID(gomock.Any(), testedID).Return(vocabulary.Record{ID: testedID, Score: 500}, nil)
				repo.EXPECT().UpdateScore(gomock.Any(), testedID, 521).Return(nil)
			},
			want: ScoreChange{Tested: &ScoreDelta{RecordID: testedID, Before: 500, After: 521}},
		},
		{
			name:       "skip",
			resolution: Resolution{Outcome: OutcomeSkip},
			setupMock:  func(repo *mock_vocabulary.MockRepository) {},
		},
		{
			name:       "store failure",
			resolution: Resolution{Outcome: OutcomeResolved, Answer: &Answer{Text: "glad", Correct: true}},
			setupMock: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().GetByID(gomock.Any(), testedID).Return(vocabulary.Record{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_vocabulary.NewMockRepository(ctrl)
			tt.setupMock(repo)

			updater := NewScoreUpdater(repo)
			got, err := updater.Apply(context.Background(), Question{RecordID: testedID, Word: "happy"}, tt.resolution)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
