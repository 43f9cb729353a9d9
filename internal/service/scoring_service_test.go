package service_test

import (
	"testing"

	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/service"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestScoreSkippedQuestion(t *testing.T) {
	scoring := service.NewScoringService()
	quiz := &model.Quiz{MarksPerQuestion: 2, NegativeMarking: 0.5}
	question := &model.Question{CorrectOption: "A"}

	isCorrect, marks := scoring.Score(question, nil, quiz)
	assert.False(t, isCorrect)
	assert.Equal(t, 0.0, marks)

	isCorrect, marks = scoring.Score(question, strPtr(""), quiz)
	assert.False(t, isCorrect)
	assert.Equal(t, 0.0, marks, "skipping must never cost marks")
}

func TestScoreMarkingScheme(t *testing.T) {
	scoring := service.NewScoringService()
	quiz := &model.Quiz{MarksPerQuestion: 2, NegativeMarking: 0.5}
	question := &model.Question{CorrectOption: "B"}

	isCorrect, marks := scoring.Score(question, strPtr("B"), quiz)
	assert.True(t, isCorrect)
	assert.Equal(t, 2.0, marks)

	isCorrect, marks = scoring.Score(question, strPtr("D"), quiz)
	assert.False(t, isCorrect)
	assert.Equal(t, -0.5, marks)
}

func TestScoreSelectionNormalization(t *testing.T) {
	scoring := service.NewScoringService()
	quiz := &model.Quiz{MarksPerQuestion: 1}
	question := &model.Question{CorrectOption: "C"}

	// Lowercase and full option text both resolve to the letter.
	isCorrect, _ := scoring.Score(question, strPtr("c"), quiz)
	assert.True(t, isCorrect)

	isCorrect, _ = scoring.Score(question, strPtr("c) the speed of light"), quiz)
	assert.True(t, isCorrect)
}

func TestScoreSumAcrossAttempt(t *testing.T) {
	scoring := service.NewScoringService()
	quiz := &model.Quiz{MarksPerQuestion: 2, NegativeMarking: 0.5}
	questions := []model.Question{
		{CorrectOption: "A"},
		{CorrectOption: "B"},
		{CorrectOption: "C"},
	}
	selections := []*string{strPtr("A"), strPtr("D"), nil}

	total := 0.0
	for i := range questions {
		_, marks := scoring.Score(&questions[i], selections[i], quiz)
		total += marks
	}
	assert.Equal(t, 1.5, total)
}
