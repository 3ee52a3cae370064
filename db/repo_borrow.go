package db

import (
	"context"
	"errors"
	"time"

	"Gin_postgres_library_api/models"

	"gorm.io/gorm"
)

// Borrows

var ErrAlreadyBorrowed = errors.New("book already borrowed")

// ListUserBorrows 连书名一起取，借出时间倒序
func (r *Repo) ListUserBorrows(ctx context.Context, userID uint) ([]models.BookBorrow, error) {
	var borrows []models.BookBorrow
	err := r.DB.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("borrow_date DESC").
		Find(&borrows).Error
	return borrows, err
}

// BorrowBook 借出：事务内 查书 → 确认无未归还记录 → 新建 borrow。
// 并发兜底是 Migrate 里的部分唯一索引，撞上时同样报 ErrAlreadyBorrowed。
func (r *Repo) BorrowBook(ctx context.Context, userID, bookID uint) (*models.BookBorrow, error) {
	var borrow *models.BookBorrow
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Book
		if err := tx.First(&b, "id = ?", bookID).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&models.BookBorrow{}).
			Where("book_id = ? AND return_date IS NULL", bookID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyBorrowed
		}

		bb := &models.BookBorrow{
			UserID:     userID,
			BookID:     b.ID,
			BorrowDate: time.Now().UTC(),
		}
		if err := tx.Create(bb).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBorrowed
			}
			return err
		}
		borrow = bb
		return nil
	})
	if err != nil {
		return nil, err
	}
	return borrow, nil
}

// ReturnBook 归还：只认 (user, book) 都匹配的未归还记录，
// 别人借的同一本书不会被归还到这里。
func (r *Repo) ReturnBook(ctx context.Context, userID, bookID uint, score *int64) (*models.BookBorrow, error) {
	var bb models.BookBorrow
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND book_id = ? AND return_date IS NULL", userID, bookID).
			First(&bb).Error; err != nil {
			return err
		}
		now := time.Now().UTC()
		bb.ReturnDate = &now
		bb.Score = score
		return tx.Save(&bb).Error
	})
	if err != nil {
		return nil, err
	}
	return &bb, nil
}
