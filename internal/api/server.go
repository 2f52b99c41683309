package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/icecream-api/docs"
	v1 "github.com/vietanh2810/icecream-api/internal/api/handler/v1"
	"github.com/vietanh2810/icecream-api/internal/api/handler/web"
	"github.com/vietanh2810/icecream-api/internal/api/middleware"
	"github.com/vietanh2810/icecream-api/internal/config"
	"github.com/vietanh2810/icecream-api/internal/flash"
	"github.com/vietanh2810/icecream-api/internal/metrics"
	"github.com/vietanh2810/icecream-api/internal/repository"
	"github.com/vietanh2810/icecream-api/internal/repository/dao"
	"github.com/vietanh2810/icecream-api/internal/service"
)

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Metrics *metrics.Metrics
}

func NewServer(conf *config.AppConfig, db *gorm.DB, m *metrics.Metrics) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		Metrics: m,
	}

	s.MountMiddlewares()

	flavourRepo := repository.NewFlavourRepository(dao.NewFlavourDAO(db))
	flavourSvc := service.NewFlavourService(flavourRepo, conf.FormRules, m)
	personSvc := s.initPersonService(db, flavourRepo)

	s.MountPages(web.NewFlavourPages(flavourSvc))
	s.MountHandlers(v1.NewFlavourHandler(flavourSvc), v1.NewPersonHandler(personSvc))

	return s
}

func (s *Server) initPersonService(db *gorm.DB, flavourRepo *repository.FlavourRepository) *service.PersonService {
	personDAO := dao.NewPersonDAO(db)
	repo := repository.NewPersonRepository(personDAO, flavourRepo)
	svc := service.NewPersonService(repo, flavourRepo)

	return svc
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Logger())
	s.Router.Use(middleware.Instrument(s.Metrics))
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

// MountPages serves the HTML pages for the shop staff.
func (s *Server) MountPages(pages *web.FlavourPages) {
	s.Router.SetHTMLTemplate(web.Templates())

	flashes := flash.NewStore(s.Config.Flash.CookieName, s.Config.Flash.MaxAge)
	web.NewHandler(flashes).MountFlavourPages(s.Router, pages)
}

func (s *Server) MountHandlers(flavourHandler *v1.FlavourHandler, personHandler *v1.PersonHandler) {
	const basePath = "/api/v1"

	flavours := s.Router.Group(basePath)
	{
		flavours.GET("/flavours", flavourHandler.HandleListFlavours)
		flavours.POST("/flavours", flavourHandler.HandleCreateFlavour)
		flavours.GET("/flavours/:flavourID", flavourHandler.HandleGetFlavour)
		flavours.PUT("/flavours/:flavourID", flavourHandler.HandleUpdateFlavour)
		flavours.DELETE("/flavours/:flavourID", flavourHandler.HandleDeleteFlavour)
	}

	persons := s.Router.Group(basePath)
	{
		persons.GET("/persons", personHandler.HandleListPersons)
		persons.POST("/persons", personHandler.HandleCreatePerson)
		persons.GET("/persons/:personID", personHandler.HandleGetPerson)
		persons.PUT("/persons/:personID", personHandler.HandleUpdatePerson)
		persons.DELETE("/persons/:personID", personHandler.HandleDeletePerson)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Ice cream shop API"
	docs.SwaggerInfo.Description = "Admin API for the flavours and the persons who like them."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
