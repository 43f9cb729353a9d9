package service

import (
	"errors"
	"strings"

	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	AddQuestion(quizID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(id uint) error
	FilterQuestions(filter dto.QuestionFilterDTO) ([]dto.QuestionResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
	subjectRepo  repository.SubjectRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	quizRepo repository.QuizRepository,
	subjectRepo repository.SubjectRepository,
) QuestionService {
	return &questionService{questionRepo: questionRepo, quizRepo: quizRepo, subjectRepo: subjectRepo}
}

func (s *questionService) AddQuestion(quizID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, err
	}

	question, err := buildQuestionModel(s.subjectRepo, req)
	if err != nil {
		return nil, err
	}
	question.QuizID = quizID

	if err := s.questionRepo.Create(question); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to create question")
		return nil, err
	}

	created, err := s.questionRepo.FindByID(question.ID)
	if err != nil {
		return nil, err
	}
	resp := questionToDTO(created)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	existing, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question %d not found", id)
		}
		return nil, err
	}

	updated, err := buildQuestionModel(s.subjectRepo, req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.QuizID = existing.QuizID
	updated.CreatedAt = existing.CreatedAt

	if err := s.questionRepo.Save(updated); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, err
	}

	reloaded, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := questionToDTO(reloaded)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("question %d not found", id)
		}
		return err
	}
	return s.questionRepo.Delete(id)
}

func (s *questionService) FilterQuestions(filter dto.QuestionFilterDTO) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.Filter(filter.Subject, filter.Chapter, filter.Difficulty, filter.QType)
	if err != nil {
		log.Error().Err(err).Msg("FilterQuestions: repository error")
		return nil, err
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		dtos = append(dtos, questionToDTO(&questions[i]))
	}
	return dtos, nil
}

func questionToDTO(q *model.Question) dto.QuestionResponseDTO {
	resp := dto.QuestionResponseDTO{
		ID:            q.ID,
		QuizID:        q.QuizID,
		Text:          q.Text,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectOption: q.CorrectOption,
		Difficulty:    q.Difficulty,
		QType:         q.QType,
	}
	if q.Subject != nil {
		resp.Subject = q.Subject.Name
	}
	if q.Chapter != nil {
		resp.Chapter = q.Chapter.Name
	}
	return resp
}

// buildQuestionModel validates one question payload and resolves its
// subject/chapter tags through the conflict-safe get-or-create.
func buildQuestionModel(subjectRepo repository.SubjectRepository, req dto.QuestionCreateDTO) (*model.Question, error) {
	correct := strings.ToUpper(strings.TrimSpace(req.CorrectOption))
	if len(correct) != 1 || correct < "A" || correct > "D" {
		return nil, apperr.InvalidInput("correct option must be one of A-D, got %q", req.CorrectOption)
	}
	if req.Chapter != "" && req.Subject == "" {
		return nil, apperr.InvalidInput("chapter %q requires a subject", req.Chapter)
	}

	question := model.Question{
		Text:          req.Text,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: correct,
	}
	if req.Difficulty != "" {
		question.Difficulty = req.Difficulty
	}
	if req.QType != "" {
		question.QType = req.QType
	}

	if req.Subject != "" {
		subject, err := subjectRepo.GetOrCreateSubject(req.Subject)
		if err != nil {
			return nil, err
		}
		question.SubjectID = &subject.ID
		if req.Chapter != "" {
			chapter, err := subjectRepo.GetOrCreateChapter(subject.ID, req.Chapter)
			if err != nil {
				return nil, err
			}
			question.ChapterID = &chapter.ID
		}
	}
	return &question, nil
}
