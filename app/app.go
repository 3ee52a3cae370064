package app

import (
	"Gin_postgres_library_api/db"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Repo   *db.Repo
}

func MustNew() *App {
	dbConn := db.ConnectDB()

	r := gin.Default()
	useCORS(r)
	r.Use(RequestID())

	return &App{
		Router: r,
		DB:     dbConn,
		Repo:   db.NewRepo(dbConn),
	}
}
