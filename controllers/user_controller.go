package controllers

import (
	"errors"
	"net/http"

	"Gin_postgres_library_api/app"
	"Gin_postgres_library_api/db"
	"Gin_postgres_library_api/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type UserController struct{ Repo *db.Repo }

func NewUserController(repo *db.Repo) *UserController { return &UserController{Repo: repo} }

type userSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type pastBorrow struct {
	Name      string `json:"name"`
	UserScore *int64 `json:"userScore"`
}

type presentBorrow struct {
	Name string `json:"name"`
}

// GET /users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Repo.ListUsers(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary{ID: u.ID, Name: u.Name})
	}
	c.JSON(http.StatusOK, out)
}

// GET /users/:id
// 借阅记录按借出时间倒序，分成已归还(past)和在借(present)两组
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "User not found"})
		return
	}

	user, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "User not found"})
			return
		}
		internalError(c)
		return
	}

	borrows, err := uc.Repo.ListUserBorrows(c.Request.Context(), id)
	if err != nil {
		internalError(c)
		return
	}

	past := make([]pastBorrow, 0)
	present := make([]presentBorrow, 0)
	for _, bb := range borrows {
		if bb.ReturnDate != nil {
			past = append(past, pastBorrow{Name: bb.Book.Name, UserScore: bb.Score})
		} else {
			present = append(present, presentBorrow{Name: bb.Book.Name})
		}
	}

	c.JSON(http.StatusOK, app.H{
		"id":   user.ID,
		"name": user.Name,
		"books": app.H{
			"past":    past,
			"present": present,
		},
	})
}

// POST /users
func (uc *UserController) CreateUser(c *gin.Context) {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
		internalError(c)
		return
	}
	if err := uc.Repo.CreateUser(c.Request.Context(), &models.User{Name: in.Name}); err != nil {
		internalError(c)
		return
	}
	c.Status(http.StatusCreated)
}

// POST /users/:userId/borrow/:bookId
// 先查用户再查书，最后确认这本书没被任何人借走
func (uc *UserController) BorrowBook(c *gin.Context) {
	userID, ok := parseID(c.Param("userId"))
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "User not found"})
		return
	}
	bookID, ok := parseID(c.Param("bookId"))
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "Book not found"})
		return
	}

	if _, err := uc.Repo.FindUserByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "User not found"})
			return
		}
		internalError(c)
		return
	}

	if _, err := uc.Repo.BorrowBook(c.Request.Context(), userID, bookID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, app.H{"error": "Book not found"})
		case errors.Is(err, db.ErrAlreadyBorrowed):
			c.JSON(http.StatusBadRequest, app.H{"error": "Book is already borrowed"})
		default:
			internalError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /users/:userId/return/:bookId
// 只归还 (user, book) 都对得上的那条在借记录
func (uc *UserController) ReturnBook(c *gin.Context) {
	userID, ok := parseID(c.Param("userId"))
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "No active borrow found for this book and user"})
		return
	}
	bookID, ok := parseID(c.Param("bookId"))
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "No active borrow found for this book and user"})
		return
	}

	var in struct {
		Score *int64 `json:"score"`
	}
	if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
		internalError(c)
		return
	}

	if _, err := uc.Repo.ReturnBook(c.Request.Context(), userID, bookID, in.Score); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "No active borrow found for this book and user"})
			return
		}
		internalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
