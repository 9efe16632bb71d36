package models

// Player is created lazily the first time a name appears in a submitted
// game and is never deleted. Names are the de-duplication key, matched
// exactly as stored.
type Player struct {
	ID   uint   `gorm:"column:player_id;primaryKey;autoIncrement" json:"player_id"`
	Name string `gorm:"column:player_name;size:255;uniqueIndex;not null" json:"player_name"`
}

func (Player) TableName() string {
	return "player"
}
