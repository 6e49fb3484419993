package service

import (
	"hoangtv/flashcard-api/model"
	"time"

	"gorm.io/gorm"
)

// Copier clones a library set (and its cards) into a new private set
// owned by the requesting user.
type Copier struct {
	DB *gorm.DB
}

// CopySet duplicates the source set for userID. The copy is always
// private, gets fresh identities for the set and every card, and shares
// no state with the source afterwards. The source must be public or
// already owned by the caller.
//
// The set insert and all card inserts run in a single transaction, so a
// failure mid-copy leaves nothing behind.
func (s *Copier) CopySet(userID UserID, sourceSetID string) (string, error) {
	var source model.FlashcardSet

	err := s.DB.Where("id = ?", sourceSetID).First(&source).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrNotFound
		}
		return "", err
	}

	if !source.IsPublic && source.UserID != string(userID) {
		return "", ErrForbidden
	}

	newSetID, err := NewID()
	if err != nil {
		return "", err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&model.FlashcardSet{
			ID:          newSetID,
			UserID:      string(userID),
			Title:       source.Title,
			Description: source.Description,
			Subject:     source.Subject,
			IsPublic:    false,
			CreatedAt:   time.Now(),
		}).Error
		if err != nil {
			return err
		}

		var cards []model.Flashcard
		if err := tx.Where("set_id = ?", sourceSetID).Find(&cards).Error; err != nil {
			return err
		}

		for _, card := range cards {
			cardID, err := NewID()
			if err != nil {
				return err
			}

			err = tx.Create(&model.Flashcard{
				ID:     cardID,
				SetID:  newSetID,
				Front:  card.Front,
				Back:   card.Back,
				Romaji: card.Romaji,
			}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return newSetID, nil
}
