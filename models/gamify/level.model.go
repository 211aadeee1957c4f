package gamify

import "gorm.io/gorm"

// Level is a named tier over a half-open star range [MinStars,
// MaxStars). Ranges are kept non-overlapping on the admin
// create/update path, not at lookup time.
type Level struct {
	gorm.Model
	Number      int    `json:"number" gorm:"uniqueIndex;not null"`
	Name        string `json:"name"`
	MinStars    int    `json:"min_stars"`
	MaxStars    int    `json:"max_stars"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Contains reports whether balance falls inside the level's range.
func (l *Level) Contains(balance int) bool {
	return balance >= l.MinStars && balance < l.MaxStars
}
