package handlers

import (
	"net/http"

	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/Mallqui258/Automatizacion2/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HandlerManager struct {
	questionHandler *QuestionHandler
	sessionHandler  *SessionHandler
	resultHandler   *ResultHandler
	logger          utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		questionHandler: NewQuestionHandler(serviceManager.Catalog(), logger),
		sessionHandler:  NewSessionHandler(serviceManager.Session(), logger),
		resultHandler: NewResultHandler(
			serviceManager.Result(),
			serviceManager.Stats(),
			serviceManager.Export(),
			logger,
		),
		logger: logger,
	}
}

// SetupRoutes sets up all API routes. Every endpoint is served under
// /api/v1 and under the unversioned /api prefix used by existing clients.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.Use(
		gin.Recovery(),
		utils.RequestID(),
		utils.LoggerMiddleware(hm.logger),
		utils.ContextLogger(hm.logger),
	)

	router.GET("/health", HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, prefix := range []string{"/api/v1", "/api"} {
		hm.registerAPI(router.Group(prefix))
	}
}

func (hm *HandlerManager) registerAPI(api *gin.RouterGroup) {
	// Instrument
	api.GET("/questions", hm.questionHandler.ListQuestions)
	api.GET("/questions/:number", hm.questionHandler.GetQuestion)
	api.GET("/scales", hm.questionHandler.ListScales)

	// Sessions
	api.POST("/start-test", hm.sessionHandler.StartTest)
	api.POST("/save-response", hm.sessionHandler.SaveResponse)
	api.POST("/complete-test", hm.sessionHandler.CompleteTest)
	api.GET("/test-session/:id", hm.sessionHandler.GetSession)
	api.GET("/all-sessions", hm.sessionHandler.ListSessions)

	// Results
	api.GET("/results/:id", hm.resultHandler.GetResults)
	api.POST("/results/score", hm.resultHandler.ScoreAnswers)
	api.GET("/stats", hm.resultHandler.GetStats)
	api.GET("/export", hm.resultHandler.ExportSessions)
}

// NewRouter builds the gin engine with all routes and wraps it in the CORS
// handler.
func NewRouter(serviceManager services.ServiceManager, logger utils.Logger, allowedOrigins []string) http.Handler {
	router := gin.New()
	NewHandlerManager(serviceManager, logger).SetupRoutes(router)

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})(router)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "casm83-service",
	})
}
