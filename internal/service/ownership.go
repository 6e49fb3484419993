package service

import (
	"hoangtv/flashcard-api/model"

	"gorm.io/gorm"
)

// Guard answers whether a user may touch a flashcard set. Mutations
// require ownership; reads of public sets bypass the guard entirely.
type Guard struct {
	DB *gorm.DB
}

// AuthorizeMutation allows a mutation of the set (or of cards nested
// under it) only for the owning user. Returns ErrNotFound when the set
// does not exist and ErrForbidden on an owner mismatch.
func (g *Guard) AuthorizeMutation(userID UserID, setID string) (*model.FlashcardSet, error) {
	var set model.FlashcardSet

	err := g.DB.Where("id = ?", setID).First(&set).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if set.UserID != string(userID) {
		return nil, ErrForbidden
	}

	return &set, nil
}

// AuthorizeRead allows reads of public sets by anyone and of private
// sets by their owner only.
func (g *Guard) AuthorizeRead(userID UserID, setID string) (*model.FlashcardSet, error) {
	var set model.FlashcardSet

	err := g.DB.Where("id = ?", setID).First(&set).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !set.IsPublic && set.UserID != string(userID) {
		return nil, ErrForbidden
	}

	return &set, nil
}
