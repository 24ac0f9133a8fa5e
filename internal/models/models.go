package models

type User struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null"     json:"username"`
	Password    string  `gorm:"not null"                 json:"password"`
	Role        string  `gorm:"not null"                 json:"role"`
	FullName    string  `gorm:"not null"                 json:"full_name"`
	Address     *string `json:"address"`
	PaymentInfo *string `json:"payment_info"`
}

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null"                 json:"name"`
	Category     string  `gorm:"not null"                 json:"category"`
	Price        float64 `json:"price"`
	ThumbnailURL string  `json:"thumbnail_url"`
}
