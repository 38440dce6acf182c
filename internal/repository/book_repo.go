package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookshelfhq/librarysystem/internal/entity"
)

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	Update(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id uint) (*entity.Book, error)
	FindAll(ctx context.Context, offset, limit int) ([]entity.Book, error)
	FindByLibraryID(ctx context.Context, libraryID uint) ([]entity.Book, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create persists the book including its library_id column; the Library
// object itself is not upserted.
func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error
}

func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(book).Error
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*entity.Book, error) {
	var book entity.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindAll(ctx context.Context, offset, limit int) ([]entity.Book, error) {
	var books []entity.Book
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// FindByLibraryID derives a library's owned books from the forward
// reference instead of a stored back-pointer.
func (r *bookRepository) FindByLibraryID(ctx context.Context, libraryID uint) ([]entity.Book, error) {
	var books []entity.Book
	if err := r.db.WithContext(ctx).
		Where("library_id = ?", libraryID).
		Order("id").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *bookRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Book{}, "id = ?", id).Error
}
