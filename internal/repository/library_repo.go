package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookshelfhq/librarysystem/internal/entity"
)

type LibraryRepository interface {
	Create(ctx context.Context, library *entity.Library) error
	Update(ctx context.Context, library *entity.Library) error
	FindByID(ctx context.Context, id uint) (*entity.Library, error)
	FindAll(ctx context.Context, offset, limit int) ([]entity.Library, error)
	FindFirst(ctx context.Context) (*entity.Library, error)
	FindLast(ctx context.Context) (*entity.Library, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error
	AppendUser(ctx context.Context, library *entity.Library, user *entity.User) error
	RemoveUser(ctx context.Context, library *entity.Library, user *entity.User) error
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) Create(ctx context.Context, library *entity.Library) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(library).Error
}

// Update persists scalar fields only; books and members have their own paths.
func (r *libraryRepository) Update(ctx context.Context, library *entity.Library) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(library).Error
}

func (r *libraryRepository) FindByID(ctx context.Context, id uint) (*entity.Library, error) {
	var library entity.Library
	if err := r.db.WithContext(ctx).
		Preload("Books").
		Preload("Users").
		First(&library, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *libraryRepository) FindAll(ctx context.Context, offset, limit int) ([]entity.Library, error) {
	var libraries []entity.Library
	if err := r.db.WithContext(ctx).
		Preload("Books").
		Preload("Users").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&libraries).Error; err != nil {
		return nil, err
	}
	return libraries, nil
}

func (r *libraryRepository) FindFirst(ctx context.Context) (*entity.Library, error) {
	var library entity.Library
	if err := r.db.WithContext(ctx).Order("id asc").Take(&library).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *libraryRepository) FindLast(ctx context.Context) (*entity.Library, error) {
	var library entity.Library
	if err := r.db.WithContext(ctx).Order("id desc").Take(&library).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *libraryRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Library{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DeleteByID removes the library, its owned books and its membership rows
// in one transaction. Member users themselves are never deleted.
func (r *libraryRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("library_id = ?", id).Delete(&entity.Book{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM library_users WHERE library_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Library{}, "id = ?", id).Error
	})
}

// AppendUser inserts a membership row. Appending an existing member is a
// no-op at the join table.
func (r *libraryRepository) AppendUser(ctx context.Context, library *entity.Library, user *entity.User) error {
	return r.db.WithContext(ctx).
		Model(library).
		Omit("Users.*").
		Association("Users").
		Append(&entity.User{ID: user.ID})
}

// RemoveUser deletes the membership row only; both entities survive.
func (r *libraryRepository) RemoveUser(ctx context.Context, library *entity.Library, user *entity.User) error {
	return r.db.WithContext(ctx).
		Model(library).
		Association("Users").
		Delete(&entity.User{ID: user.ID})
}
