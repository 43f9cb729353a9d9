package service

import (
	"strings"

	"github.com/lshigami/Margay/internal/model"
)

// ScoringService grades a single question of an attempt. It is a pure
// function of (question, selection, quiz): no rounding, no clamping, so
// the attempt score is the exact floating sum the caller accumulates.
type ScoringService interface {
	Score(question *model.Question, selected *string, quiz *model.Quiz) (isCorrect bool, marks float64)
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score applies the marking scheme:
//   - nil or empty selection: not correct, 0.0 marks (no penalty on skip)
//   - correct selection: +quiz.MarksPerQuestion
//   - wrong selection: -quiz.NegativeMarking
//
// Selection matching is case-insensitive on the first character, so
// "b" and "B) some text" both count as option B.
func (s *scoringService) Score(question *model.Question, selected *string, quiz *model.Quiz) (bool, float64) {
	if selected == nil || *selected == "" {
		return false, 0.0
	}
	picked := strings.ToUpper((*selected)[:1])
	if picked == question.CorrectOption {
		return true, quiz.MarksPerQuestion
	}
	return false, -quiz.NegativeMarking
}
