package entity

type Book struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Description     string `gorm:"size:255;not null" json:"description"`
	Author          string `gorm:"size:255;not null" json:"author"`
	Genre           string `gorm:"size:255;not null" json:"genre"`
	PublicationYear int    `gorm:"not null" json:"publication_year"`

	// Set once at creation; nullable at the type level only.
	LibraryID *uint    `gorm:"index" json:"library_id,omitempty"`
	Library   *Library `json:"library,omitempty"`
}
