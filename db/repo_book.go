package db

import (
	"Gin_postgres_library_api/models"
	"context"
)

// Books

func (r *Repo) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&books).Error
	return books, err
}

func (r *Repo) FindBookByID(ctx context.Context, id uint) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

// ReturnedScores 只取已归还且有评分的记录
func (r *Repo) ReturnedScores(ctx context.Context, bookID uint) ([]int64, error) {
	var scores []int64
	err := r.DB.WithContext(ctx).Model(&models.BookBorrow{}).
		Where("book_id = ? AND return_date IS NOT NULL AND score IS NOT NULL", bookID).
		Pluck("score", &scores).Error
	return scores, err
}
