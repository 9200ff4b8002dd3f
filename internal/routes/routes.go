package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/familyexpressec/courier-api/internal/audit"
	"github.com/familyexpressec/courier-api/internal/cache"
	"github.com/familyexpressec/courier-api/internal/chat"
	"github.com/familyexpressec/courier-api/internal/config"
	"github.com/familyexpressec/courier-api/internal/handlers"
	infraRepo "github.com/familyexpressec/courier-api/internal/infra/repository"
	"github.com/familyexpressec/courier-api/internal/middleware"
	"github.com/familyexpressec/courier-api/internal/storage"
	"github.com/familyexpressec/courier-api/internal/tracking"
	ucPreAlert "github.com/familyexpressec/courier-api/internal/usecase/prealert"
	ucShipment "github.com/familyexpressec/courier-api/internal/usecase/shipment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	shipmentRepo := infraRepo.NewShipmentGormRepository(db)
	preAlertRepo := infraRepo.NewPreAlertGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	trackingCache := cache.New(cfg.RedisAddr)
	codes := tracking.NewGenerator(shipmentRepo, cfg.TrackingPrefix)
	objectStore := storage.NewB2Store(cfg)

	chatHub := chat.NewHub()
	go chatHub.Run()

	// ======================================================
	// 🧠 USE CASES — SHIPMENTS
	// ======================================================
	createShipmentUC := ucShipment.NewCreateShipment(
		shipmentRepo,
		codes,
		auditDispatcher,
	)

	updateStatusUC := ucShipment.NewUpdateStatus(
		shipmentRepo,
		trackingCache,
		auditDispatcher,
	)

	markPrintedUC := ucShipment.NewMarkPrinted(
		shipmentRepo,
		auditDispatcher,
	)

	trackUC := ucShipment.NewTrack(
		shipmentRepo,
		trackingCache,
	)

	statsUC := ucShipment.NewGetStatistics(shipmentRepo)

	// ======================================================
	// 🧠 USE CASES — PRE-ALERTS
	// ======================================================
	createPreAlertUC := ucPreAlert.NewCreate(
		preAlertRepo,
		auditDispatcher,
	)

	receivePreAlertUC := ucPreAlert.NewReceive(
		preAlertRepo,
		createShipmentUC,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, objectStore)

	clientHandler := handlers.NewClientHandler(db, objectStore)
	catalogHandler := handlers.NewCatalogHandler(db)

	shipmentHandler := handlers.NewShipmentHandler(
		shipmentRepo,
		createShipmentUC,
		updateStatusUC,
		markPrintedUC,
		statsUC,
	)

	trackingHandler := handlers.NewTrackingHandler(trackUC)

	preAlertHandler := handlers.NewPreAlertHandler(
		db,
		objectStore,
		preAlertRepo,
		createPreAlertUC,
		receivePreAlertUC,
	)

	lockerHandler := handlers.NewLockerHandler(db)
	chatHandler := handlers.NewChatHandler(db, chatHub)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/tracking/:code", trackingHandler.Lookup)
			publicAPI.GET("/items", catalogHandler.ListActive)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/customer/signup", authHandler.CustomerSignup)
		api.POST("/auth/customer/login", authHandler.CustomerLogin)

		// ------------------------------
		// 🔐 STAFF (mostrador / bodega)
		// ------------------------------
		staff := api.Group("/")
		staff.Use(middleware.AuthStaff(cfg))
		{
			staff.GET("/me", meHandler.Me)

			// Clientes y familiares
			staff.POST("/clients", clientHandler.Create)
			staff.GET("/clients", clientHandler.List)
			staff.GET("/clients/:id", clientHandler.Get)
			staff.PUT("/clients/:id", clientHandler.Update)
			staff.DELETE("/clients/:id", clientHandler.Delete)
			staff.POST("/clients/:id/photo", clientHandler.UploadPhoto)

			staff.POST("/clients/:id/family-members", clientHandler.AddFamilyMember)
			staff.PUT("/clients/:id/family-members/:memberId", clientHandler.UpdateFamilyMember)
			staff.DELETE("/clients/:id/family-members/:memberId", clientHandler.RemoveFamilyMember)
			staff.POST("/clients/:id/family-members/:memberId/id-photo/:side", clientHandler.UploadFamilyMemberIDPhoto)

			// Envíos
			staff.POST("/shipments", shipmentHandler.Create)
			staff.POST("/shipments/quote", shipmentHandler.Quote)
			staff.GET("/shipments", shipmentHandler.List)
			staff.GET("/shipments/:id", shipmentHandler.Get)
			staff.PATCH("/shipments/:id/status", shipmentHandler.UpdateStatus)
			staff.PATCH("/shipments/:id/receipt-printed", shipmentHandler.MarkReceiptPrinted)
			staff.PATCH("/shipments/:id/label-printed", shipmentHandler.MarkLabelPrinted)
			staff.GET("/shipments/stats", shipmentHandler.Statistics)

			// Casilleros (vista de bodega)
			staff.GET("/lockers", lockerHandler.ListAccounts)
			staff.GET("/lockers/:id", lockerHandler.GetAccount)

			staff.GET("/pre-alerts", preAlertHandler.ListPending)
			staff.POST("/pre-alerts/received-photo", preAlertHandler.UploadReceivedPhoto)
			staff.POST("/pre-alerts/:id/receive", preAlertHandler.Receive)

			// Catálogo
			staff.GET("/catalog", catalogHandler.ListAll)
			staff.POST("/catalog", catalogHandler.Create)
			staff.PUT("/catalog/:id", catalogHandler.Update)
			staff.DELETE("/catalog/:id", catalogHandler.Delete)

			// Chat (asesor)
			staff.GET("/chat/ws", chatHandler.WebSocket)
			staff.GET("/chat/:customerId", chatHandler.AdvisorHistory)
			staff.POST("/chat/:customerId", chatHandler.AdvisorSend)

			staff.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// 🔐 CUSTOMER (portal de casilleros)
		// ------------------------------
		portal := api.Group("/portal")
		portal.Use(middleware.AuthCustomer(cfg))
		{
			portal.GET("/me", meHandler.CustomerMe)
			portal.PUT("/me", meHandler.CustomerUpdateProfile)
			portal.POST("/me/photo", meHandler.CustomerUploadPhoto)

			portal.GET("/shipments", shipmentHandler.ListMine)

			portal.POST("/pre-alerts", preAlertHandler.Create)
			portal.GET("/pre-alerts", preAlertHandler.ListMine)
			portal.POST("/pre-alerts/:id/invoice", preAlertHandler.UploadInvoice)

			portal.GET("/chat/ws", chatHandler.WebSocket)
			portal.GET("/chat", chatHandler.CustomerHistory)
			portal.POST("/chat", chatHandler.CustomerSend)
		}
	}
}
