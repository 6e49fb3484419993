package validators

import "errors"

var (
	ErrSetTitleEmpty   = errors.New("set title can't be empty")
	ErrSetTitleTooLong = errors.New("set title is too long")

	ErrCardFrontEmpty = errors.New("card front can't be empty")
	ErrCardBackEmpty  = errors.New("card back can't be empty")
)

func SetTitleValidator(t string) error {
	if t == "" {
		return ErrSetTitleEmpty
	}

	if len(t) > 200 {
		return ErrSetTitleTooLong
	}

	return nil
}

func CardValidator(front, back string) error {
	if front == "" {
		return ErrCardFrontEmpty
	}

	if back == "" {
		return ErrCardBackEmpty
	}

	return nil
}
