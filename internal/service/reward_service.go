package service

import (
	"math"

	"github.com/lshigami/Margay/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TopperBadge is granted when an attempt score reaches TopperThreshold.
const (
	TopperBadge     = "Topper"
	TopperThreshold = 30.0
)

// SubmitObserver receives the one successful InProgress→Submitted
// transition of an attempt. It runs inside the submit transaction, so
// its writes commit or roll back together with the score. Keeping
// gamification behind this interface leaves the scoring core untouched
// when reward policy changes.
type SubmitObserver interface {
	AttemptSubmitted(tx *gorm.DB, attempt *model.Attempt) error
}

type rewardService struct{}

func NewRewardService() SubmitObserver {
	return &rewardService{}
}

// AttemptSubmitted credits floor(max(0, score)) coins and grants the
// Topper badge once the threshold is reached. Called at most once per
// attempt; the attempt service guarantees that.
func (s *rewardService) AttemptSubmitted(tx *gorm.DB, attempt *model.Attempt) error {
	var user model.User
	if err := tx.First(&user, attempt.UserID).Error; err != nil {
		return err
	}

	coins := int(math.Floor(math.Max(0, attempt.Score)))
	user.Coins += coins
	if attempt.Score >= TopperThreshold {
		user.AddBadge(TopperBadge)
	}

	if err := tx.Save(&user).Error; err != nil {
		return err
	}

	log.Info().
		Uint("userID", user.ID).
		Uint("attemptID", attempt.ID).
		Int("coins", coins).
		Float64("score", attempt.Score).
		Msg("Submit rewards applied")
	return nil
}
