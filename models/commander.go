package models

// ColorCodes is the fixed WUBRG ordering used everywhere a color identity
// is reported.
var ColorCodes = []string{"W", "U", "B", "R", "G"}

// Commander rows are created on first reference from a game submission.
// Image and color identity are backfilled from Scryfall after creation and
// may stay empty when the lookup fails.
type Commander struct {
	ID     uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string           `gorm:"column:commander_name;size:255;uniqueIndex;not null" json:"commander_name"`
	Image  *string          `gorm:"size:1024" json:"image"`
	Colors []CommanderColor `gorm:"foreignKey:CommanderID" json:"colors,omitempty"`
}

func (Commander) TableName() string {
	return "commander"
}

// CommanderColor is one color of a commander's identity, normalized out so
// frequency queries can join on single color codes.
type CommanderColor struct {
	CommanderID uint   `gorm:"primaryKey" json:"commander_id"`
	ColorCode   string `gorm:"primaryKey;size:1" json:"color_code"`
}

func (CommanderColor) TableName() string {
	return "commander_color"
}
