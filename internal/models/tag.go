package model

type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;not null" json:"name"`
	Color string `gorm:"size:7;not null" json:"color"`
}
