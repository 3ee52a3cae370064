package routes

import (
	"Gin_postgres_library_api/app"
	"Gin_postgres_library_api/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	bookCtl := controllers.NewBookController(a.Repo)
	userCtl := controllers.NewUserController(a.Repo)

	// ------------------------------
	// 图书
	// ------------------------------
	books := r.Group("/books")
	{
		books.GET("", bookCtl.ListBooks)
		books.GET("/:id", bookCtl.GetBook)
		books.POST("",
			app.Validate(app.RequiredString("name", "Name is required and must be a string")),
			bookCtl.CreateBook,
		)
	}

	// ------------------------------
	// 用户 + 借还
	// ------------------------------
	users := r.Group("/users")
	{
		users.GET("", userCtl.ListUsers)
		users.GET("/:id", userCtl.GetUser)
		users.POST("",
			app.Validate(app.RequiredString("name", "Name is required and must be a string")),
			userCtl.CreateUser,
		)
		users.POST("/:userId/borrow/:bookId", userCtl.BorrowBook)
		users.POST("/:userId/return/:bookId",
			app.Validate(app.IntInRange("score", 0, 10, "Score must be an integer between 0 and 10")),
			userCtl.ReturnBook,
		)
	}
}
