package entity

type Library struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:255;not null" json:"description"`
	City        string    `gorm:"size:255;not null" json:"city"`
	OpeningTime TimeOfDay `gorm:"not null" json:"opening_time"`
	ClosingTime TimeOfDay `gorm:"not null" json:"closing_time"`

	// Books are owned by the library; deleting a library deletes them.
	// Membership rows are independent of both sides' lifecycles.
	Books []Book `gorm:"foreignKey:LibraryID" json:"books,omitempty"`
	Users []User `gorm:"many2many:library_users" json:"users,omitempty"`
}
