package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/zunde-outreach/checkin-api/docs"
	v1 "github.com/zunde-outreach/checkin-api/internal/api/handler/v1"
	"github.com/zunde-outreach/checkin-api/internal/api/middleware"
	"github.com/zunde-outreach/checkin-api/internal/broker"
	"github.com/zunde-outreach/checkin-api/internal/config"
	"github.com/zunde-outreach/checkin-api/internal/notification"
	"github.com/zunde-outreach/checkin-api/internal/pkg/ticket"
	"github.com/zunde-outreach/checkin-api/internal/repository"
	"github.com/zunde-outreach/checkin-api/internal/repository/dao"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth         *v1.AuthHandler
	event        *v1.EventHandler
	participant  *v1.ParticipantHandler
	checkIn      *v1.CheckInHandler
	attendance   *v1.AttendanceHandler
	notification *v1.NotificationHandler
}

type repositories struct {
	events       *repository.EventRepository
	participants *repository.ParticipantRepository
	attendance   *repository.AttendanceRepository
}

func NewServer(conf *config.AppConfig, db *gorm.DB, publisher broker.Publisher) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	dispatcher, err := s.initDispatcher()
	if err != nil {
		return nil, fmt.Errorf("s.initDispatcher -> %w", err)
	}

	repos := initRepositories(db)

	authHandler, err := s.initAuthHandler()
	if err != nil {
		return nil, fmt.Errorf("s.initAuthHandler -> %w", err)
	}

	s.MountHandlers(handlers{
		auth:         authHandler,
		event:        initEventHandler(repos),
		participant:  s.initParticipantHandler(repos, dispatcher, publisher),
		checkIn:      initCheckInHandler(repos, dispatcher, publisher),
		attendance:   initAttendanceHandler(repos),
		notification: s.initNotificationHandler(repos, dispatcher),
	})

	return s, nil
}

func initRepositories(db *gorm.DB) repositories {
	return repositories{
		events:       repository.NewEventRepository(dao.NewEventDAO(db)),
		participants: repository.NewParticipantRepository(dao.NewParticipantDAO(db)),
		attendance:   repository.NewAttendanceRepository(dao.NewAttendanceDAO(db)),
	}
}

// initDispatcher sends email over SMTP when a host is configured. SMS and
// WhatsApp are always simulated.
func (s *Server) initDispatcher() (*notification.Dispatcher, error) {
	nc := s.Config.Notification

	composer, err := notification.NewComposer(notification.NewTranslator(nc.Locale), notification.ComposerConfig{
		Locale:       nc.Locale,
		Timezone:     nc.Timezone,
		Organization: nc.OrganizationName,
	})
	if err != nil {
		return nil, fmt.Errorf("notification.NewComposer -> %w", err)
	}

	var email notification.EmailSender = notification.NewSimulatedEmailSender(nc.SimulatedLatency)
	if s.Config.SMTP.Enabled() {
		email = notification.NewSMTPSender(notification.SMTPConfig{
			Host:     s.Config.SMTP.Host,
			Port:     s.Config.SMTP.Port,
			Username: s.Config.SMTP.Username,
			Password: s.Config.SMTP.Password,
			From:     s.Config.SMTP.From,
		})
	}

	return notification.NewDispatcher(
		composer,
		email,
		notification.NewSimulatedTextSender(notification.ChannelSMS, nc.SimulatedLatency),
		notification.NewSimulatedTextSender(notification.ChannelWhatsApp, nc.SimulatedLatency),
	), nil
}

func (s *Server) initAuthHandler() (*v1.AuthHandler, error) {
	apiConf := s.Config.API
	svc, err := service.NewAuthService(service.StaffCredentials{
		Email:        apiConf.StaffEmail,
		Password:     apiConf.StaffPassword,
		PasswordHash: apiConf.StaffPasswordHash,
	}, apiConf.JWTSigningKey, apiConf.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("service.NewAuthService -> %w", err)
	}

	return v1.NewAuthHandler(svc), nil
}

func initEventHandler(repos repositories) *v1.EventHandler {
	svc := service.NewEventService(repos.events)
	stats := service.NewAttendanceService(repos.events, repos.participants, repos.attendance)

	return v1.NewEventHandler(svc, stats)
}

func (s *Server) initParticipantHandler(repos repositories, notifier service.Notifier, publisher broker.Publisher) *v1.ParticipantHandler {
	registration := service.NewRegistrationService(
		repos.participants,
		repos.events,
		ticket.NewIDGenerator(s.Config.Ticket.Prefix),
		ticket.EncodeQRCode,
		notifier,
		publisher,
	)
	svc := service.NewParticipantService(repos.participants)

	return v1.NewParticipantHandler(registration, svc)
}

func initCheckInHandler(repos repositories, notifier service.Notifier, publisher broker.Publisher) *v1.CheckInHandler {
	svc := service.NewCheckInService(repos.participants, repos.events, repos.attendance, notifier, publisher)

	return v1.NewCheckInHandler(svc)
}

func initAttendanceHandler(repos repositories) *v1.AttendanceHandler {
	svc := service.NewAttendanceService(repos.events, repos.participants, repos.attendance)

	return v1.NewAttendanceHandler(svc)
}

func (s *Server) initNotificationHandler(repos repositories, notifier service.Notifier) *v1.NotificationHandler {
	svc := service.NewNotificationService(repos.events, repos.participants, notifier, s.Config.Notification.BulkDelay)

	return v1.NewNotificationHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	staffOnly := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", h.auth.HandleLogin)
		public.GET("/events", h.event.HandleGetEvents)
		public.GET("/events/:eventID", h.event.HandleGetEvent)
		public.POST("/participants", h.participant.HandleRegisterParticipant)
		public.GET("/participants/ticket/:ticketID", h.participant.HandleGetParticipantByTicket)
	}

	staff := s.Router.Group(basePath, staffOnly)
	{
		staff.POST("/events", h.event.HandleCreateEvent)
		staff.PATCH("/events/:eventID/status", h.event.HandleUpdateEventStatus)
		staff.GET("/events/:eventID/stats", h.event.HandleGetEventStats)
		staff.GET("/participants", h.participant.HandleGetParticipants)
		staff.POST("/checkin", h.checkIn.HandleCheckIn)
		staff.POST("/checkin/scan", h.checkIn.HandleScan)
		staff.GET("/checkins", h.attendance.HandleGetCheckIns)
		staff.POST("/notifications", h.notification.HandleSendNotifications)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Zunde check-in API"
	docs.SwaggerInfo.Description = "Event registration, ticketing and bus check-in for outreach events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
