package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zatekoja/hivclinic/internal/adapters/notify"
	"github.com/zatekoja/hivclinic/internal/adapters/restapi"
	"github.com/zatekoja/hivclinic/internal/adapters/session"
	"github.com/zatekoja/hivclinic/internal/application/services"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/redis"
	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
	"github.com/zatekoja/hivclinic/pkg/config"
)

// errReported marks a failure that was already shown through the notifier
var errReported = errors.New("operation failed")

// app holds every dependency a command may need
type app struct {
	cfg      *config.Config
	out      io.Writer
	session  providers.SessionStore
	notifier providers.Notifier
	bus      *notify.RedisNotifier

	auth         repositories.AuthRepository
	appointments repositories.AppointmentRepository
	blogs        repositories.BlogRepository
	education    repositories.EducationContentRepository
	dashboard    repositories.DashboardRepository
	staff        repositories.StaffRepository
	records      repositories.MedicalRecordRepository
	plans        repositories.TreatmentPlanRepository
	uploads      repositories.UploadRepository

	closers []func(context.Context) error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, out: os.Stdout}

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			observability.GetLogger().Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			a.closers = append(a.closers, shutdown)
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		observability.GetLogger().Warn().Err(err).Msg("failed to initialize metrics")
	}

	var redisClient *redis.Client
	if cfg.Session.Backend == config.SessionBackendRedis || cfg.Notify.Backend == config.NotifyBackendRedis {
		redisClient, err = redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return redisClient.Close() })
	}

	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		a.session = session.NewRedisStore(redisClient, cfg.Session.Namespace)
	default:
		a.session = session.NewFileStore(cfg.Session.FilePath)
	}

	switch cfg.Notify.Backend {
	case config.NotifyBackendRedis:
		a.bus = notify.NewRedisNotifier(redisClient, cfg.Notify.Channel, metrics)
		a.notifier = a.bus
	default:
		a.notifier = notify.NewLogNotifier(metrics)
	}

	client := clinicapi.NewClient(cfg.API.BaseURL, a.session,
		clinicapi.WithTimeout(cfg.API.Timeout),
		clinicapi.WithMetrics(metrics),
	)
	fallback := restapi.NewFallbackPolicy(cfg.API.FallbackEnabled, metrics)

	a.auth = restapi.NewAuthAdapter(client, a.session)
	a.appointments = restapi.NewAppointmentAdapter(client, fallback)
	a.blogs = restapi.NewBlogAdapter(client, a.session, fallback)
	a.education = restapi.NewEducationContentAdapter(client, a.session, fallback)
	a.dashboard = restapi.NewDashboardAdapter(client, fallback)
	a.staff = restapi.NewStaffAdapter(client, a.auth, fallback)
	a.records = restapi.NewMedicalRecordAdapter(client)
	a.plans = restapi.NewTreatmentPlanAdapter(client)
	a.uploads = restapi.NewUploadAdapter(client)

	return a, nil
}

func (a *app) staffService() *services.StaffManagementService {
	return services.NewStaffManagementService(a.staff, a.notifier, a.cfg.Hooks.SearchDebounce, a.cfg.Hooks.PageSize)
}

func (a *app) appointmentBoard() *services.AppointmentBoardService {
	return services.NewAppointmentBoardService(a.appointments, a.notifier)
}

func (a *app) dashboardService() *services.DashboardService {
	return services.NewDashboardService(a.dashboard, a.notifier)
}

func (a *app) planBoard() *services.TreatmentPlanBoardService {
	return services.NewTreatmentPlanBoardService(a.plans, a.records, a.notifier)
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			observability.GetLogger().Warn().Err(err).Msg("shutdown error")
		}
	}
}

// reported turns a false mutation result into an error without printing
// the message twice
func reported(ok bool) error {
	if ok {
		return nil
	}
	return errReported
}
