package entity

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null" json:"username"`
	FirstName *string   `gorm:"size:255" json:"first_name,omitempty"`
	LastName  *string   `gorm:"size:255" json:"last_name,omitempty"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Libraries []Library `gorm:"many2many:library_users" json:"libraries,omitempty"`
}
