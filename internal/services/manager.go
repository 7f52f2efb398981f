package services

import (
	"log/slog"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/cache"
	"github.com/Mallqui258/Automatizacion2/internal/catalog"
	"github.com/Mallqui258/Automatizacion2/internal/events"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/scoring"
	"github.com/Mallqui258/Automatizacion2/internal/validator"
)

// ServiceManager gives handlers and commands access to every service built
// over one shared repository, catalog and cache.
type ServiceManager interface {
	Session() SessionService
	Result() ResultService
	Stats() StatsService
	Export() ExportService
	Catalog() *catalog.Catalog
	Validator() *validator.Validator
}

// Dependencies are the collaborators a ServiceManager is built from. Cache
// and Publisher may be nil; a no-op cache and a mock publisher are used then.
type Dependencies struct {
	Repository repositories.Repository
	Catalog    *catalog.Catalog
	Cache      cache.CacheService
	CacheTTL   time.Duration
	Publisher  events.EventPublisher
	Logger     *slog.Logger
}

type serviceManager struct {
	catalog   *catalog.Catalog
	validator *validator.Validator
	session   SessionService
	result    ResultService
	stats     StatsService
	export    ExportService
}

func NewServiceManager(deps Dependencies) ServiceManager {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewNoopCache()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NewMockEventPublisher(deps.Logger)
	}

	engine := scoring.NewEngine(deps.Catalog)
	v := validator.New(deps.Catalog)
	result := NewResultService(deps.Repository, engine, deps.Cache, deps.CacheTTL, v, deps.Logger)

	return &serviceManager{
		catalog:   deps.Catalog,
		validator: v,
		session:   NewSessionService(deps.Repository, result, deps.Cache, deps.Publisher, v, deps.Logger),
		result:    result,
		stats:     NewStatsService(deps.Repository, engine, deps.Logger),
		export:    NewExportService(deps.Repository, engine, deps.Logger),
	}
}

func (m *serviceManager) Session() SessionService         { return m.session }
func (m *serviceManager) Result() ResultService           { return m.result }
func (m *serviceManager) Stats() StatsService             { return m.stats }
func (m *serviceManager) Export() ExportService           { return m.export }
func (m *serviceManager) Catalog() *catalog.Catalog       { return m.catalog }
func (m *serviceManager) Validator() *validator.Validator { return m.validator }
