//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"maak/internal/gateway/rest/backend"
	"maak/internal/gateway/storage"
	"maak/internal/handlers/rest/deal_accept_post"
	"maak/internal/handlers/rest/deal_code_get"
	"maak/internal/handlers/rest/deal_code_post"
	"maak/internal/handlers/rest/deal_events_ws"
	"maak/internal/handlers/rest/deal_get"
	"maak/internal/handlers/rest/deal_pickup_post"
	"maak/internal/handlers/rest/deal_post"
	"maak/internal/handlers/rest/matches_get"
	"maak/internal/handlers/rest/parcel_cancel_post"
	"maak/internal/handlers/rest/parcel_post"
	"maak/internal/handlers/rest/parcels_get"
	"maak/internal/handlers/rest/session_delete"
	"maak/internal/handlers/rest/session_get"
	"maak/internal/handlers/rest/session_patch"
	"maak/internal/handlers/rest/trip_cancel_post"
	"maak/internal/handlers/rest/trip_post"
	"maak/internal/handlers/rest/trips_get"
	"maak/internal/handlers/tasks/post_expiry"
	"maak/internal/pkg/config"
	"maak/internal/realtime"
	guardstateRepo "maak/internal/repository/guardstate"
	dealService "maak/internal/service/deal"
	matchingService "maak/internal/service/matching"
	parcelService "maak/internal/service/parcel"
	sessionService "maak/internal/service/session"
	tripService "maak/internal/service/trip"

	"maak/pkg/background"
	"maak/pkg/logger"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceTrip       ServiceTrip
	ServiceParcel     ServiceParcel
	ServiceMatching   ServiceMatching
	ServiceDeal       ServiceDeal
	ServiceSession    ServiceSession
	Backend           *backend.Client
	Hub               *realtime.Hub
	BackgroundWorkers *background.Worker
}

type ServiceTrip interface {
	trip_post.Service
	trips_get.Service
	trip_cancel_post.Service
	matches_get.TripService
}

type ServiceParcel interface {
	parcel_post.Service
	parcels_get.Service
	parcel_cancel_post.Service
	matches_get.ParcelService
}

type ServiceMatching interface {
	matches_get.MatchingService
}

type ServiceDeal interface {
	deal_post.Service
	deal_get.Service
	deal_accept_post.Service
	deal_pickup_post.Service
	deal_code_get.Service
	deal_code_post.Service
	deal_events_ws.Service
}

type ServiceSession interface {
	session_get.Service
	session_patch.Service
	session_delete.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	httpClient *http.Client,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideBackendClient,
		provideStorageClient,
		provideSweepInterval,

		provideGuardStateRepository,

		provideServiceTrip,
		provideServiceParcel,
		provideServiceMatching,
		provideServiceDeal,
		provideServiceSession,

		realtime.NewHub,

		providePostExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceTrip), new(*tripService.Service)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Service)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Service)),
		wire.Bind(new(ServiceDeal), new(*dealService.Service)),
		wire.Bind(new(ServiceSession), new(*sessionService.Service)),
	)
	return &Application{}, nil
}

func provideBackendClient(cfg *config.Config, httpClient *http.Client) *backend.Client {
	return backend.New(cfg.Backend.BaseURL, cfg.Backend.APIKey, httpClient)
}

func provideStorageClient(cfg *config.Config, httpClient *http.Client) *storage.Client {
	return storage.New(cfg.Storage.BaseURL, cfg.Storage.Bucket, cfg.Storage.APIKey, httpClient)
}

func provideGuardStateRepository(redisClient *redis.Client) *guardstateRepo.Repository {
	return guardstateRepo.New(redisClient)
}

func provideServiceTrip(client *backend.Client, log logger.Logger) *tripService.Service {
	return tripService.New(client, log)
}

func provideServiceParcel(client *backend.Client, log logger.Logger) *parcelService.Service {
	return parcelService.New(client, log)
}

func provideServiceMatching(client *backend.Client) *matchingService.Service {
	return matchingService.New(client)
}

func provideServiceDeal(client *backend.Client, store *storage.Client) *dealService.Service {
	return dealService.New(client, store)
}

func provideServiceSession(repository *guardstateRepo.Repository) *sessionService.Service {
	return sessionService.New(repository)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.PostExpirySweepInterval)
}

func providePostExpiryTask(
	log logger.Logger,
	client *backend.Client,
	interval SweepInterval,
) *post_expiry.PostExpiry {
	return post_expiry.NewPostExpiry(log, client, time.Duration(interval))
}

func provideTaskList(
	postExpiryTask *post_expiry.PostExpiry,
) []background.Task {
	return []background.Task{
		postExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
