package entity

type User struct {
	Base
	Name  string `gorm:"size:100;index"`
	Email string `gorm:"size:255;uniqueIndex"`
	Age   int
	Bio   string `gorm:"size:500"`
}
