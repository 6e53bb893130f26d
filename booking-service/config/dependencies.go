package config

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/application"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/booking-service/gateway"
	"github.com/stagepass/booking-system/booking-service/handlers"
	"github.com/stagepass/booking-system/booking-service/infrastructure"
	"github.com/stagepass/booking-system/booking-service/scheduler"
	"github.com/stagepass/booking-system/shared/events"
	sharedinfra "github.com/stagepass/booking-system/shared/infrastructure"
	"github.com/stagepass/booking-system/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	BookingRepository domain.BookingRepository

	// Gateways
	Inventory domain.InventoryGateway
	Payment   domain.PaymentGateway

	// Use Cases
	CreateBooking       *application.CreateBooking
	GetMyBookings       *application.GetMyBookings
	CancelBooking       *application.CancelBooking
	InitializeBooking   *application.InitializeBooking
	ReserveTickets      *application.ReserveTickets
	CreatePaymentIntent *application.CreatePaymentIntent
	ExpireBooking       *application.ExpireBooking
	ProcessCancellation *application.ProcessCancellation
	CancelReservation   *application.CancelReservation
	ConfirmReservation  *application.ConfirmReservation
	MarkBookingPaid     *application.MarkBookingPaid
	RequestRefund       *application.RequestRefund
	CompleteRefund      *application.CompleteRefund
	ProcessWebhook      *application.ProcessPaymentWebhook
	ReconcileBookings   *application.ReconcileBookings

	// HTTP Handlers
	BookingHandlers *handlers.BookingHTTPHandlers

	// Event Handlers
	BookingEventHandlers *handlers.BookingEventHandlers

	// Schedulers
	Expiration     *scheduler.ExpirationScheduler
	Reconciliation *scheduler.ReconciliationScheduler

	// Infrastructure
	EventPublisher  events.Publisher
	EventSubscriber events.Subscriber
	MemoryBus       *sharedinfra.MemoryEventBus
	Redis           *redis.Client
	Telemetry       *telemetry.Telemetry
	Logger          *logrus.Logger

	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, cfg *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	deps.Logger = logger

	if cfg.Telemetry.Enabled {
		tel, shutdown, err := telemetry.InitTelemetry(ctx, telemetry.Config{
			ServiceName:    cfg.ServiceName,
			ServiceVersion: "1.0.0",
			OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init telemetry: %w", err)
		}
		deps.Telemetry = tel
		deps.telemetryShutdown = shutdown
	}

	db, err := sqlx.Connect("postgres", cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db
	deps.BookingRepository = infrastructure.NewPostgresBookingRepository(db)

	if err := deps.buildEventBus(ctx, cfg, logger); err != nil {
		return nil, err
	}

	deps.buildGateways(cfg, logger)
	deps.buildUseCases(cfg, logger)

	deps.BookingHandlers = handlers.NewBookingHTTPHandlers(
		deps.CreateBooking,
		deps.GetMyBookings,
		deps.CancelBooking,
		deps.EventPublisher,
		logger,
	)

	deps.BookingEventHandlers = handlers.NewBookingEventHandlers(
		deps.InitializeBooking,
		deps.ReserveTickets,
		deps.CreatePaymentIntent,
		deps.ExpireBooking,
		deps.ProcessCancellation,
		deps.CancelReservation,
		deps.ConfirmReservation,
		deps.MarkBookingPaid,
		deps.RequestRefund,
		deps.CompleteRefund,
		deps.ProcessWebhook,
		deps.Telemetry,
		logger,
	)

	if err := deps.BookingEventHandlers.Register(ctx, deps.EventSubscriber); err != nil {
		return nil, fmt.Errorf("failed to register event handlers: %w", err)
	}

	deps.Reconciliation = scheduler.NewReconciliationScheduler(
		deps.ReconcileBookings, cfg.Workflow.ReconciliationInterval, logger)

	return deps, nil
}

func (d *Dependencies) buildEventBus(ctx context.Context, cfg *Config, logger *logrus.Logger) error {
	switch cfg.Events.Transport {
	case "aws":
		publisher, err := sharedinfra.NewSNSEventPublisher(ctx, cfg.AWS.SNSTopicArn)
		if err != nil {
			return fmt.Errorf("failed to create SNS publisher: %w", err)
		}
		subscriber, err := sharedinfra.NewSQSEventSubscriber(ctx, cfg.AWS.SQSQueueURL, logger)
		if err != nil {
			return fmt.Errorf("failed to create SQS subscriber: %w", err)
		}
		d.EventPublisher = publisher
		d.EventSubscriber = subscriber

	default:
		retry := events.DefaultRetryPolicy()
		if cfg.Events.MaxAttempts > 0 {
			retry.MaxAttempts = cfg.Events.MaxAttempts
		}
		bus := sharedinfra.NewMemoryEventBus(logger, retry)
		d.MemoryBus = bus
		d.EventPublisher = bus
		d.EventSubscriber = bus
	}

	return nil
}

func (d *Dependencies) buildGateways(cfg *Config, logger *logrus.Logger) {
	inventory := domain.InventoryGateway(gateway.NewInventoryClient(cfg.Services.InventoryURL))

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		d.Redis = client
		inventory = gateway.NewCachedInventoryGateway(inventory, client, logger)
	}

	d.Inventory = inventory
	d.Payment = gateway.NewPaymentClient(cfg.Services.PaymentURL, cfg.Services.ServiceToken)
}

func (d *Dependencies) buildUseCases(cfg *Config, logger *logrus.Logger) {
	d.Expiration = scheduler.NewExpirationScheduler(d.EventPublisher, cfg.Workflow.ExpirationDelay, logger)

	d.CreateBooking = application.NewCreateBooking(
		d.BookingRepository, d.EventPublisher, d.Expiration, cfg.Workflow.TicketLimit, logger)
	d.GetMyBookings = application.NewGetMyBookings(d.BookingRepository)
	d.CancelBooking = application.NewCancelBooking(d.BookingRepository, d.EventPublisher, logger)
	d.InitializeBooking = application.NewInitializeBooking(d.BookingRepository, d.Inventory, d.EventPublisher, logger)
	d.ReserveTickets = application.NewReserveTickets(d.BookingRepository, d.Inventory, d.EventPublisher, logger)
	d.CreatePaymentIntent = application.NewCreatePaymentIntent(d.BookingRepository, d.Payment, logger)
	d.ExpireBooking = application.NewExpireBooking(d.BookingRepository, d.Payment, d.EventPublisher, logger)
	d.ProcessCancellation = application.NewProcessCancellation(d.BookingRepository, d.Payment, logger)
	d.CancelReservation = application.NewCancelReservation(d.Inventory, logger)
	d.ConfirmReservation = application.NewConfirmReservation(d.Inventory, logger)
	d.MarkBookingPaid = application.NewMarkBookingPaid(d.BookingRepository, logger)
	d.RequestRefund = application.NewRequestRefund(d.Payment, logger)
	d.CompleteRefund = application.NewCompleteRefund(d.BookingRepository, d.Inventory, logger)
	d.ProcessWebhook = application.NewProcessPaymentWebhook(d.BookingRepository, d.EventPublisher, logger)
	d.ReconcileBookings = application.NewReconcileBookings(d.BookingRepository, d.Payment, logger)
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Expiration != nil {
		d.Expiration.Stop()
	}

	if d.MemoryBus != nil {
		if err := d.MemoryBus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event bus: %w", err))
		}
	}

	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
