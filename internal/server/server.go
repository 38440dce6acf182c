package server

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookshelfhq/librarysystem/internal/handler"
	"github.com/bookshelfhq/librarysystem/internal/middleware"
	"github.com/bookshelfhq/librarysystem/internal/repository"
	"github.com/bookshelfhq/librarysystem/internal/service"
)

const APIBasePath = "/api/v0"

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	bookRepo := repository.NewBookRepository(db)

	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	libraryService := service.NewLibraryService(libraryRepo, userRepo)
	libraryHandler := handler.NewLibraryHandler(libraryService)

	bookService := service.NewBookService(bookRepo, libraryRepo)
	bookHandler := handler.NewBookHandler(bookService)

	router := gin.New()

	setupCORS(router)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())

	api := router.Group(APIBasePath)
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Save)
			users.GET("", userHandler.FindAll)
			users.GET("/:id", userHandler.FindByID)
			users.PUT("/:id", userHandler.Update)
			users.PATCH("/:id", userHandler.UpdatePartially)
			users.DELETE("/:id", userHandler.DeleteByID)
		}

		libraries := api.Group("/libraries")
		{
			libraries.POST("", libraryHandler.Save)
			libraries.GET("", libraryHandler.FindAll)
			libraries.GET("/:id", libraryHandler.FindByID)
			libraries.PUT("/:id", libraryHandler.Update)
			libraries.PATCH("/:id", libraryHandler.UpdatePartially)
			libraries.PATCH("/addUser/:libraryId/:userId", libraryHandler.AddUserByUserID)
			libraries.PATCH("/deleteUser/:libraryId/:userId", libraryHandler.DeleteUserByUserID)
			libraries.DELETE("/:id", libraryHandler.DeleteByID)
		}

		books := api.Group("/books")
		{
			// Books are created under a library.
			books.POST("/:libraryId", bookHandler.SaveByLibraryID)
			books.GET("", bookHandler.FindAll)
			books.GET("/:id", bookHandler.FindByID)
			books.PUT("/:id", bookHandler.Update)
			books.PATCH("/:id", bookHandler.UpdatePartially)
			books.DELETE("/:id", bookHandler.DeleteByID)
		}
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
