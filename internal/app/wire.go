//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"marketplace/internal/handlers/rest/address_delete"
	"marketplace/internal/handlers/rest/address_post"
	"marketplace/internal/handlers/rest/addresses_get"
	"marketplace/internal/handlers/rest/deliveries_board_get"
	"marketplace/internal/handlers/rest/delivery_assign_post"
	"marketplace/internal/handlers/rest/delivery_autoassign_post"
	"marketplace/internal/handlers/rest/delivery_status_post"
	"marketplace/internal/handlers/rest/driver_get"
	"marketplace/internal/handlers/rest/driver_post"
	"marketplace/internal/handlers/rest/driver_put"
	"marketplace/internal/handlers/rest/drivers_get"
	"marketplace/internal/handlers/rest/location_post"
	"marketplace/internal/handlers/rest/location_put"
	"marketplace/internal/handlers/rest/locations_get"
	"marketplace/internal/handlers/rest/page_delete"
	"marketplace/internal/handlers/rest/page_get"
	"marketplace/internal/handlers/rest/page_post"
	"marketplace/internal/handlers/rest/page_put"
	"marketplace/internal/handlers/rest/pages_get"
	"marketplace/internal/handlers/rest/promotion_delete"
	"marketplace/internal/handlers/rest/promotion_post"
	"marketplace/internal/handlers/rest/promotions_get"
	"marketplace/internal/handlers/rest/taxonomy_get"
	"marketplace/internal/handlers/rest/taxonomy_post"
	"marketplace/internal/handlers/rest/taxonomy_toggle_post"
	"marketplace/internal/handlers/tasks/flash_sale_expiry"
	"marketplace/internal/handlers/tasks/stale_assignment"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/assignment_score"
	"marketplace/internal/pkg/factory/order_handle"

	addressRepo "marketplace/internal/repository/address"
	deliveryRepo "marketplace/internal/repository/delivery"
	driverRepo "marketplace/internal/repository/driver"
	locationRepo "marketplace/internal/repository/location"
	orderRepo "marketplace/internal/repository/order"
	pageRepo "marketplace/internal/repository/page"
	promotionRepo "marketplace/internal/repository/promotion"
	taxonomyRepo "marketplace/internal/repository/taxonomy"

	addressService "marketplace/internal/service/address"
	catalogService "marketplace/internal/service/catalog"
	contentService "marketplace/internal/service/content"
	deliveryService "marketplace/internal/service/delivery"
	driverService "marketplace/internal/service/driver"
	locationService "marketplace/internal/service/location"
	orderService "marketplace/internal/service/order"
	promotionService "marketplace/internal/service/promotion"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	FlashSaleSweepInterval  time.Duration
	StaleAssignmentInterval time.Duration
	StaleAssignmentAge      time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceDriver     ServiceDriver
	ServicePromotion  ServicePromotion
	ServiceLocation   ServiceLocation
	ServiceContent    ServiceContent
	ServiceCatalog    ServiceCatalog
	ServiceAddress    ServiceAddress
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	deliveries_board_get.Service
	delivery_status_post.Service
	delivery_assign_post.Service
	delivery_autoassign_post.Service
}

type ServiceDriver interface {
	drivers_get.Service
	driver_get.Service
	driver_post.Service
	driver_put.Service
}

type ServicePromotion interface {
	promotions_get.Service
	promotion_post.Service
	promotion_delete.Service
}

type ServiceLocation interface {
	locations_get.Service
	location_post.Service
	location_put.Service
}

type ServiceContent interface {
	pages_get.Service
	page_get.Service
	page_post.Service
	page_put.Service
	page_delete.Service
}

type ServiceCatalog interface {
	taxonomy_get.Service
	taxonomy_post.Service
	taxonomy_toggle_post.Service
}

type ServiceAddress interface {
	addresses_get.Service
	address_post.Service
	address_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideFlashSaleSweepInterval,
		provideStaleAssignmentInterval,
		provideStaleAssignmentAge,

		provideDeliveryRepository,
		provideDriverRepository,
		providePromotionRepository,
		provideLocationRepository,
		providePageRepository,
		provideTaxonomyRepository,
		provideAddressRepository,

		provideServiceDelivery,
		provideServiceDriver,
		provideServicePromotion,
		provideServiceLocation,
		provideServiceContent,
		provideServiceCatalog,
		provideServiceAddress,
		assignment_score.New,

		provideFlashSaleExpiryTask,
		provideStaleAssignmentTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServicePromotion), new(*promotionService.Promotion)),
		wire.Bind(new(ServiceLocation), new(*locationService.Location)),
		wire.Bind(new(ServiceContent), new(*contentService.Content)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
		wire.Bind(new(ServiceAddress), new(*addressService.Address)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(promotionService.Repository), new(*promotionRepo.Repository)),
		wire.Bind(new(locationService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(contentService.Repository), new(*pageRepo.Repository)),
		wire.Bind(new(catalogService.Repository), new(*taxonomyRepo.Repository)),
		wire.Bind(new(addressService.Repository), new(*addressRepo.Repository)),

		wire.Bind(new(deliveryService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(deliveryService.LocationService), new(*locationService.Location)),
		wire.Bind(new(deliveryService.ScoreFactory), new(*assignment_score.ScoreFactory)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(locationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(contentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(catalogService.TxManager), new(*tx.Manager)),
		wire.Bind(new(addressService.TxManager), new(*tx.Manager)),

		wire.Bind(new(flash_sale_expiry.Service), new(*promotionService.Promotion)),
		wire.Bind(new(stale_assignment.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		provideDriverRepository,
		provideLocationRepository,
		provideOrderRepository,

		provideServiceDelivery,
		provideServiceDriver,
		provideServiceLocation,
		assignment_score.New,

		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(locationService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(deliveryService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(deliveryService.LocationService), new(*locationService.Location)),
		wire.Bind(new(deliveryService.ScoreFactory), new(*assignment_score.ScoreFactory)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(locationService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func providePromotionRepository(querier *querier.Querier) *promotionRepo.Repository {
	return promotionRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func providePageRepository(querier *querier.Querier) *pageRepo.Repository {
	return pageRepo.New(querier)
}

func provideTaxonomyRepository(querier *querier.Querier) *taxonomyRepo.Repository {
	return taxonomyRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	drivers deliveryService.DriverService,
	locations deliveryService.LocationService,
	scoreFactory deliveryService.ScoreFactory,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		drivers,
		locations,
		scoreFactory,
		txManager,
	)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, txManager)
}

func provideServicePromotion(repository promotionService.Repository) *promotionService.Promotion {
	return promotionService.New(repository)
}

func provideServiceLocation(
	repository locationService.Repository,
	txManager locationService.TxManager,
) *locationService.Location {
	return locationService.New(repository, txManager)
}

func provideServiceContent(
	repository contentService.Repository,
	txManager contentService.TxManager,
) *contentService.Content {
	return contentService.New(repository, txManager)
}

func provideServiceCatalog(
	repository catalogService.Repository,
	txManager catalogService.TxManager,
) *catalogService.Catalog {
	return catalogService.New(repository, txManager)
}

func provideServiceAddress(
	repository addressService.Repository,
	txManager addressService.TxManager,
) *addressService.Address {
	return addressService.New(repository, txManager)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	repository *orderRepo.Repository,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(repository, handlerFactory)
}

func provideStatusHandlerFactory(deliveryService *deliveryService.Delivery) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(deliveryService)
}

func provideFlashSaleSweepInterval(cfg *config.Config) FlashSaleSweepInterval {
	return FlashSaleSweepInterval(cfg.Tasks.FlashSaleSweepInterval)
}

func provideStaleAssignmentInterval(cfg *config.Config) StaleAssignmentInterval {
	return StaleAssignmentInterval(cfg.Tasks.StaleAssignmentInterval)
}

func provideStaleAssignmentAge(cfg *config.Config) StaleAssignmentAge {
	return StaleAssignmentAge(cfg.Tasks.StaleAssignmentAge)
}

func provideFlashSaleExpiryTask(
	log logger.Logger,
	promotions flash_sale_expiry.Service,
	interval FlashSaleSweepInterval,
) *flash_sale_expiry.FlashSaleExpiry {
	return flash_sale_expiry.NewFlashSaleExpiry(log, promotions, time.Duration(interval))
}

func provideStaleAssignmentTask(
	log logger.Logger,
	deliveries stale_assignment.Service,
	interval StaleAssignmentInterval,
	maxAge StaleAssignmentAge,
) *stale_assignment.StaleAssignment {
	return stale_assignment.NewStaleAssignment(log, deliveries, time.Duration(interval), time.Duration(maxAge))
}

func provideTaskList(
	flashSaleExpiryTask *flash_sale_expiry.FlashSaleExpiry,
	staleAssignmentTask *stale_assignment.StaleAssignment,
) []background.Task {
	return []background.Task{
		flashSaleExpiryTask,
		staleAssignmentTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
