package models

import "time"

// Favorite is the membership of one drill in one profile's favorites list.
// Position is a secondary sort key, not a strict rank: a full replace writes
// dense zero-based positions while a toggle-insert appends at max+1, so gaps
// are tolerated and CreatedAt breaks ties.
type Favorite struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"userID" gorm:"not null;index;uniqueIndex:idx_favorites_user_drill"`
	DrillID   string    `json:"drillID" gorm:"type:varchar(128);not null;uniqueIndex:idx_favorites_user_drill"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}
