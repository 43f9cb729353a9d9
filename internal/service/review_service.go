package service

import (
	"errors"
	"sort"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReviewService builds the post-submit breakdown of an attempt. The
// aggregation is recomputed from stored rows on every call — marks are
// attempt-scoped and cheap to walk, and recomputing keeps review free
// of cache invalidation.
type ReviewService interface {
	Review(callerID, attemptID uint) (*dto.ReviewDTO, error)
}

type reviewService struct {
	userRepo    repository.UserRepository
	attemptRepo repository.AttemptRepository
}

func NewReviewService(userRepo repository.UserRepository, attemptRepo repository.AttemptRepository) ReviewService {
	return &reviewService{userRepo: userRepo, attemptRepo: attemptRepo}
}

// Review returns per-subject and per-(subject, chapter) score
// breakdowns plus the per-question items. Untagged questions group
// under subject "General" and chapter "-". Only the attempt owner and
// privileged roles may review. Groups come back sorted by name, so two
// calls without intervening writes serialize identically.
func (s *reviewService) Review(callerID, attemptID uint) (*dto.ReviewDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("attempt %d not found", attemptID)
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Review: attempt lookup failed")
		return nil, err
	}

	if attempt.UserID != callerID {
		caller, err := s.userRepo.FindByID(callerID)
		if err != nil || !caller.IsPrivileged() {
			return nil, apperr.Unauthorized("attempt %d does not belong to caller", attemptID)
		}
	}
	if attempt.Active {
		return nil, apperr.Conflict("attempt %d is still in progress", attemptID)
	}

	subjectBuckets := make(map[string]*dto.ScoreBreakdownDTO)
	chapterBuckets := make(map[[2]string]*dto.ScoreBreakdownDTO)
	items := make([]dto.ReviewItemDTO, 0, len(attempt.Answers))

	for _, answer := range attempt.Answers {
		question := answer.Question
		subjectName := question.SubjectName()
		chapterName := question.ChapterName()

		subject := subjectBuckets[subjectName]
		if subject == nil {
			subject = &dto.ScoreBreakdownDTO{Subject: subjectName}
			subjectBuckets[subjectName] = subject
		}
		chapterKey := [2]string{subjectName, chapterName}
		chapter := chapterBuckets[chapterKey]
		if chapter == nil {
			chapter = &dto.ScoreBreakdownDTO{Subject: subjectName, Chapter: chapterName}
			chapterBuckets[chapterKey] = chapter
		}

		// Skipped questions count toward total only; wrong requires an
		// actual incorrect selection. Marks accumulate signed either way.
		subject.Total++
		chapter.Total++
		switch {
		case answer.IsCorrect:
			subject.Correct++
			chapter.Correct++
		case answer.SelectedOption != nil && *answer.SelectedOption != "":
			subject.Wrong++
			chapter.Wrong++
		}
		subject.Marks += answer.MarksEarned
		chapter.Marks += answer.MarksEarned

		items = append(items, dto.ReviewItemDTO{
			QuestionID:     question.ID,
			Text:           question.Text,
			OptionA:        question.OptionA,
			OptionB:        question.OptionB,
			OptionC:        question.OptionC,
			OptionD:        question.OptionD,
			CorrectOption:  question.CorrectOption,
			SelectedOption: answer.SelectedOption,
			IsCorrect:      answer.IsCorrect,
			MarksEarned:    answer.MarksEarned,
			Flagged:        answer.Flagged,
			Note:           answer.Note,
			Subject:        subjectName,
			Chapter:        chapterName,
		})
	}

	perSubject := make([]dto.ScoreBreakdownDTO, 0, len(subjectBuckets))
	for _, bucket := range subjectBuckets {
		perSubject = append(perSubject, *bucket)
	}
	sort.Slice(perSubject, func(i, j int) bool { return perSubject[i].Subject < perSubject[j].Subject })

	perChapter := make([]dto.ScoreBreakdownDTO, 0, len(chapterBuckets))
	for _, bucket := range chapterBuckets {
		perChapter = append(perChapter, *bucket)
	}
	sort.Slice(perChapter, func(i, j int) bool {
		if perChapter[i].Subject != perChapter[j].Subject {
			return perChapter[i].Subject < perChapter[j].Subject
		}
		return perChapter[i].Chapter < perChapter[j].Chapter
	})

	return &dto.ReviewDTO{
		AttemptID:   attempt.ID,
		QuizID:      attempt.QuizID,
		QuizTitle:   attempt.Quiz.Title,
		Score:       attempt.Score,
		SubmittedAt: attempt.SubmittedAt,
		PerSubject:  perSubject,
		PerChapter:  perChapter,
		Items:       items,
	}, nil
}
