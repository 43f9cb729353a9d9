package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ImportService persists pre-parsed question rows into a quiz. File
// extraction (CSV/XLSX/PDF) lives outside the core; what arrives here
// is already row-shaped. Rows with a bad option letter are skipped and
// reported rather than failing the whole batch.
type ImportService interface {
	ImportQuestions(quizID uint, req dto.ImportRequestDTO) (*dto.ImportResultDTO, error)
}

type importService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	subjectRepo  repository.SubjectRepository
}

func NewImportService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	subjectRepo repository.SubjectRepository,
) ImportService {
	return &importService{quizRepo: quizRepo, questionRepo: questionRepo, subjectRepo: subjectRepo}
}

func (s *importService) ImportQuestions(quizID uint, req dto.ImportRequestDTO) (*dto.ImportResultDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, err
	}

	result := dto.ImportResultDTO{}
	for i, row := range req.Rows {
		question, err := buildQuestionModel(s.subjectRepo, dto.QuestionCreateDTO(row))
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", i+1, err.Error()))
			continue
		}
		question.QuizID = quizID
		if err := s.questionRepo.Create(question); err != nil {
			log.Error().Err(err).Uint("quizID", quizID).Int("row", i+1).Msg("ImportQuestions: insert failed")
			return nil, err
		}
		result.Imported++
	}

	log.Info().Uint("quizID", quizID).Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("Question import finished")
	return &result, nil
}
