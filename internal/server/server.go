package server

import (
	"errors"
	"log/slog"
	"net/http"
	"shopease-api/internal/config"
	"shopease-api/internal/handler"
	"shopease-api/internal/metrics"
	authmw "shopease-api/internal/middleware"
	"shopease-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// uploadLimit caps multipart spreadsheet uploads.
const uploadLimit = "5M"

type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	authHandler      *handler.AuthHandler
	customerHandler  *handler.CustomerHandler
	storeHandler     *handler.StoreHandler
	offerHandler     *handler.OfferHandler
	analyticsHandler *handler.AnalyticsHandler
	saleHandler      *handler.SaleHandler
	feedbackHandler  *handler.FeedbackHandler
	qrHandler        *handler.QRHandler
}

type Services struct {
	Auth      service.AuthService
	Customer  service.CustomerService
	Store     service.StoreService
	Section   service.SectionService
	Offer     service.OfferService
	Analytics service.AnalyticsService
	Export    service.ExportService
	Sale      service.SaleService
	Feedback  service.FeedbackService
	QR        service.QRService
}

func NewServer(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics, svcs Services) *Server {
	e := echo.New()
	e.HideBanner = true

	httpLogger := logger.With("component", "http")
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			httpLogger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &requestValidator{validate: validator.New()}

	s := &Server{
		echo:    e,
		cfg:     cfg,
		logger:  logger.With("component", "http"),
		metrics: m,

		authHandler:      handler.NewAuthHandler(svcs.Auth),
		customerHandler:  handler.NewCustomerHandler(svcs.Customer),
		storeHandler:     handler.NewStoreHandler(svcs.Store, svcs.Section, svcs.Offer),
		offerHandler:     handler.NewOfferHandler(svcs.Offer),
		analyticsHandler: handler.NewAnalyticsHandler(svcs.Analytics, svcs.Export),
		saleHandler:      handler.NewSaleHandler(svcs.Sale),
		feedbackHandler:  handler.NewFeedbackHandler(svcs.Feedback),
		qrHandler:        handler.NewQRHandler(svcs.QR),
	}

	e.HTTPErrorHandler = s.handleError
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.POST("/customer/register", s.customerHandler.Register)
	auth.POST("/customer/verify-otp", s.customerHandler.VerifyOTP)
	auth.POST("/customer/resend-otp", s.customerHandler.ResendOTP)

	// -------- public storefront + events --------
	api.GET("/public/stores/:storeId", s.storeHandler.PublicStore)
	api.GET("/public/stores/:storeId/offers", s.storeHandler.PublicOffers)
	api.POST("/analytics/qr-scan", s.analyticsHandler.RecordScan)
	api.POST("/feedback", s.feedbackHandler.Submit)

	// -------- tenant routes --------
	jwt := authmw.JWTAuth(s.cfg.JWT.Secret)

	stores := api.Group("/stores", jwt)
	stores.GET("/me", s.storeHandler.GetProfile)
	stores.PUT("/me", s.storeHandler.UpdateProfile)
	stores.GET("/sections", s.storeHandler.ListSections)
	stores.POST("/sections", s.storeHandler.CreateSection)
	stores.PUT("/sections/:id", s.storeHandler.UpdateSection)
	stores.DELETE("/sections/:id", s.storeHandler.DeleteSection)

	offers := api.Group("/offers", jwt)
	offers.GET("", s.offerHandler.List)
	offers.POST("", s.offerHandler.Create)
	offers.GET("/:id", s.offerHandler.Get)
	offers.PUT("/:id", s.offerHandler.Update)
	offers.PATCH("/:id/toggle", s.offerHandler.Toggle)
	offers.DELETE("/:id", s.offerHandler.Delete)
	offers.POST("/bulk-import", s.offerHandler.BulkImport, middleware.BodyLimit(uploadLimit))

	analytics := api.Group("/analytics", jwt)
	analytics.GET("/dashboard", s.analyticsHandler.Dashboard)
	analytics.GET("/qr-scans", s.analyticsHandler.ListScans)
	analytics.GET("/sales", s.analyticsHandler.ListSalesData)
	analytics.POST("/sales-data", s.analyticsHandler.CreateSalesData)
	analytics.POST("/sales-upload", s.analyticsHandler.UploadSalesData, middleware.BodyLimit(uploadLimit))
	analytics.GET("/export", s.analyticsHandler.Export)
	analytics.GET("/sales/export", s.analyticsHandler.ExportSalesWorkbook)

	sales := api.Group("/sales", jwt)
	sales.GET("", s.saleHandler.List)
	sales.POST("", s.saleHandler.Create)
	sales.GET("/:id", s.saleHandler.Get)

	feedback := api.Group("/feedback", jwt)
	feedback.GET("", s.feedbackHandler.List)

	qr := api.Group("/qr", jwt)
	qr.POST("/store/generate-main", s.qrHandler.GenerateStoreQR)
	qr.POST("/sections/:id/generate", s.qrHandler.GenerateSectionQR)
}

// handleError maps domain sentinels to HTTP statuses. Internal errors keep
// their message only in development.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, map[string]interface{}{"error": he.Message})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrDuplicateEmail), errors.Is(err, service.ErrDuplicateDate):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrSectionMismatch),
		errors.Is(err, service.ErrTotalMismatch),
		errors.Is(err, service.ErrInvalidPrice):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.metrics.Errors.WithLabelValues("http").Inc()
		s.logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		if !s.cfg.Environment.IsDevelopment() {
			message = "internal server error"
		}
	}

	_ = c.JSON(status, map[string]interface{}{"error": message})
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			messages := make([]string, len(fields))
			for i, fe := range fields {
				messages[i] = fe.Field() + " failed on " + fe.Tag()
			}
			return echo.NewHTTPError(http.StatusBadRequest, messages)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
