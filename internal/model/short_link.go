package model

import "time"

type ShortLink struct {
	BaseModel
	ShortCode   string     `gorm:"uniqueIndex;size:20;not null" json:"shortCode"`
	LongURL     string     `gorm:"size:2048;not null" json:"longUrl"`
	ClickCount  int64      `gorm:"default:0" json:"clickCount"`
	LastClicked *time.Time `json:"lastClicked"`
	CreatedBy   string     `gorm:"size:64;default:anonymous" json:"createdBy"`
}
