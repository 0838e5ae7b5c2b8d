package routes

import (
	"time"

	"github.com/Misheck-bot/transport-system-sub001/configs"
	"github.com/Misheck-bot/transport-system-sub001/controllers"
	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/middlewares"
	"github.com/Misheck-bot/transport-system-sub001/pkg/metrics"
	"github.com/Misheck-bot/transport-system-sub001/queue"
	"github.com/Misheck-bot/transport-system-sub001/repository"
	"github.com/Misheck-bot/transport-system-sub001/services"
	"github.com/Misheck-bot/transport-system-sub001/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.AlertHub, events *queue.Publisher, rdb *redis.Client) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	truckRepo := repository.NewTruckRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ecardRepo := repository.NewECardRepository(db)
	scanRepo := repository.NewScanRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	truckSvc := services.NewTruckService(truckRepo)
	docSvc := services.NewDocumentService(docRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, cfg.SettleDelay)
	ecardSvc := services.NewECardService(db, ecardRepo)
	scanSvc := services.NewScanService(db, scanRepo, ecardRepo, events)
	alertSvc := services.NewAlertService(alertRepo, events)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	truckCtrl := controllers.NewTruckController(truckSvc)
	docCtrl := controllers.NewDocumentController(docSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	ecardCtrl := controllers.NewECardController(ecardSvc)
	agentCtrl := controllers.NewAgentController(scanSvc, userRepo)
	alertCtrl := controllers.NewAlertController(alertSvc, hub)
	adminCtrl := controllers.NewAdminController(db, ecardSvc, paymentSvc, truckSvc)
	feeCtrl := controllers.NewFeeController()

	secret := cfg.JWTSecret

	// Auth (public, rate-limited when Redis is up)
	a := r.Group("/auth", middlewares.RateLimit(rdb, 20, time.Minute))
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Profile (any authenticated)
	profile := r.Group("/profile", middlewares.AuthMiddleware(secret))
	{
		profile.GET("", authCtrl.Me)
		profile.PUT("", authCtrl.UpdateMe)
	}

	// Trucks (driver)
	trucks := r.Group("/trucks", middlewares.AuthMiddleware(secret, entity.RoleDriver))
	{
		trucks.POST("", truckCtrl.Register)
		trucks.GET("", truckCtrl.List)
		trucks.GET("/:id", truckCtrl.Detail)
		trucks.PUT("/:id", truckCtrl.Update)
		trucks.DELETE("/:id", truckCtrl.Delete)
	}

	// Documents (driver)
	docs := r.Group("/documents", middlewares.AuthMiddleware(secret, entity.RoleDriver))
	{
		docs.POST("", docCtrl.Upload)
		docs.GET("", docCtrl.List)
		docs.DELETE("/:id", docCtrl.Delete)
	}

	// Payments (any authenticated)
	payments := r.Group("/payments", middlewares.AuthMiddleware(secret))
	{
		payments.POST("", paymentCtrl.Create)
		payments.GET("", paymentCtrl.List)
		payments.GET("/:id", paymentCtrl.Detail)
	}

	// E-Cards (any authenticated)
	ecards := r.Group("/ecards", middlewares.AuthMiddleware(secret))
	{
		ecards.POST("", ecardCtrl.Issue)
		ecards.GET("", ecardCtrl.List)
		ecards.GET("/:id", ecardCtrl.Detail)
	}

	// Fees (any authenticated)
	r.GET("/fees/estimate", middlewares.AuthMiddleware(secret), feeCtrl.Estimate)

	// Agent
	agent := r.Group("/agent", middlewares.AuthMiddleware(secret, entity.RoleAgent))
	{
		agent.POST("/scans", agentCtrl.RecordScan)
		agent.GET("/scans", agentCtrl.ListScans)
		agent.PATCH("/drivers/:id", agentCtrl.UpdateDriverStatus)
		agent.POST("/alerts", alertCtrl.Create)
		agent.GET("/alerts", alertCtrl.List)
	}

	// Live alert feed (agent/admin)
	r.GET("/ws/alerts", middlewares.AuthMiddleware(secret, entity.RoleAgent, entity.RoleAdmin), hub.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.POST("/users", adminCtrl.CreateUser)
		admin.PATCH("/users/:id", adminCtrl.UpdateUser)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
		admin.GET("/payments", adminCtrl.ListPayments)
		admin.PUT("/payments/:id", adminCtrl.AdjudicatePayment)
		admin.GET("/trucks", adminCtrl.ListTrucks)
		admin.PATCH("/trucks/:id/verify", adminCtrl.VerifyTruck)
		admin.PATCH("/ecards/:id/approve", adminCtrl.ApproveECard)
		admin.GET("/scans/export", adminCtrl.ExportScans)
	}
}
