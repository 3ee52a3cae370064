package controllers

import (
	"errors"
	"math"
	"net/http"

	"Gin_postgres_library_api/app"
	"Gin_postgres_library_api/db"
	"Gin_postgres_library_api/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type BookController struct{ Repo *db.Repo }

func NewBookController(repo *db.Repo) *BookController { return &BookController{Repo: repo} }

type bookSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GET /books
func (bc *BookController) ListBooks(c *gin.Context) {
	books, err := bc.Repo.ListBooks(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	out := make([]bookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, bookSummary{ID: b.ID, Name: b.Name})
	}
	c.JSON(http.StatusOK, out)
}

// GET /books/:id
// score = 已归还借阅的平均分保留两位小数；没有可算的记录时返回 -1，
// 用来区分"没数据"和"平均 0 分"。
func (bc *BookController) GetBook(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "Book not found"})
		return
	}

	book, err := bc.Repo.FindBookByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Book not found"})
			return
		}
		internalError(c)
		return
	}

	scores, err := bc.Repo.ReturnedScores(c.Request.Context(), id)
	if err != nil {
		internalError(c)
		return
	}

	average := float64(-1)
	if len(scores) > 0 {
		var sum int64
		for _, s := range scores {
			sum += s
		}
		average = math.Round(float64(sum)/float64(len(scores))*100) / 100
	}

	c.JSON(http.StatusOK, app.H{
		"id":    book.ID,
		"name":  book.Name,
		"score": average,
	})
}

// POST /books
func (bc *BookController) CreateBook(c *gin.Context) {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindBodyWith(&in, binding.JSON); err != nil {
		internalError(c)
		return
	}
	if err := bc.Repo.CreateBook(c.Request.Context(), &models.Book{Name: in.Name}); err != nil {
		internalError(c)
		return
	}
	c.Status(http.StatusCreated)
}
