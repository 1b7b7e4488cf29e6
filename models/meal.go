package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One logged food-intake event with its estimated calorie value.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index:idx_meals_user_date" json:"user_id"`
	Description string    `gorm:"not null" json:"description"`
	Calories    float64   `json:"calories"`
	CreatedDate time.Time `gorm:"type:date;index:idx_meals_user_date" json:"created_date"`
}

// BeforeCreate assigns the id exactly once, at insertion time.
func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
