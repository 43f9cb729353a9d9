package repository

import (
	"github.com/lshigami/Margay/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubjectRepository resolves free-form subject/chapter names to rows.
// Get-or-create goes through the unique index with ON CONFLICT DO
// NOTHING followed by a re-read, so concurrent imports racing on the
// same name converge on one row instead of trusting a read-then-write.
type SubjectRepository interface {
	GetOrCreateSubject(name string) (*model.Subject, error)
	GetOrCreateChapter(subjectID uint, name string) (*model.Chapter, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) GetOrCreateSubject(name string) (*model.Subject, error) {
	subject := model.Subject{Name: name}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&subject).Error; err != nil {
		return nil, err
	}
	// The insert is silently skipped when another writer won the race;
	// re-read to get the surviving row either way.
	if err := r.db.Where("name = ?", name).First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) GetOrCreateChapter(subjectID uint, name string) (*model.Chapter, error) {
	chapter := model.Chapter{SubjectID: subjectID, Name: name}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&chapter).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("subject_id = ? AND name = ?", subjectID, name).First(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}
