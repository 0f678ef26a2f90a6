package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gik339/recipe-catalog/docs"
	v1 "github.com/gik339/recipe-catalog/internal/api/handler/v1"
	"github.com/gik339/recipe-catalog/internal/api/middleware"
	"github.com/gik339/recipe-catalog/internal/config"
	"github.com/gik339/recipe-catalog/internal/repository"
	"github.com/gik339/recipe-catalog/internal/repository/dao"
	"github.com/gik339/recipe-catalog/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	recipeHandler := s.initRecipeHandler(db)
	s.MountHandlers(recipeHandler)

	return s
}

func (s *Server) initRecipeHandler(db *gorm.DB) *v1.RecipeHandler {
	recipeDAO := dao.NewRecipeDAO(db)
	repo := repository.NewRecipeRepository(recipeDAO)
	svc := service.NewCatalogService(repo)
	handler := v1.NewRecipeHandler(s.Config.Validation, svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(recipeHandler *v1.RecipeHandler) {
	// The client contract fixes these paths at the root; no version prefix.
	recipes := s.Router.Group("/recipes")
	{
		recipes.GET("", recipeHandler.HandleListRecipes)
		recipes.GET("/:recipeID", recipeHandler.HandleGetRecipe)
		recipes.POST("", recipeHandler.HandleCreateRecipe)
		recipes.PUT("", recipeHandler.HandleUpdateRecipe) // id travels in the body
		recipes.DELETE("/:recipeID", recipeHandler.HandleDeleteRecipe)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Recipe Catalog API"
	docs.SwaggerInfo.Description = "CRUD API for a small menu-item catalog."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
