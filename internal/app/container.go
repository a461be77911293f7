// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/config"
	"github.com/runoshun/taskboard/internal/infra/filestore"
	"github.com/runoshun/taskboard/internal/infra/git"
	"github.com/runoshun/taskboard/internal/infra/logging"
	"github.com/runoshun/taskboard/internal/tracker"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	RootDir   string // Project root (git work tree root or the given directory)
	DataDir   string // Path to the .taskboard directory
	StorePath string // Path to the store file
}

// newConfig derives the paths from the project root and the loaded settings.
func newConfig(root string, appConfig *domain.Config) Config {
	dataDir := domain.DataDir(root)
	return Config{
		RootDir:   root,
		DataDir:   dataDir,
		StorePath: domain.StorePath(dataDir, appConfig.Store.File),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store            domain.Store // Set by OpenStore
	StoreInitializer domain.StoreInitializer
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager
	Logger           domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closer    io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the project containing dir.
// Log entries at WARN and above are mirrored to stderr.
func New(dir string, stderr io.Writer) (*Container, error) {
	root, err := git.FindRoot(dir)
	if err != nil {
		return nil, err
	}
	dataDir := domain.DataDir(root)

	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := newConfig(root, appConfig)

	// File logging only once the project has been initialized.
	logDir := ""
	if info, err := os.Stat(dataDir); err == nil && info.IsDir() {
		logDir = dataDir
	}
	logger := logging.New(logDir, logging.ParseLevel(appConfig.Log.Level))
	if stderr != nil {
		logger.WithMirror(stderr, slog.LevelWarn)
	}

	return &Container{
		StoreInitializer: filestore.NewInitializer(cfg.StorePath, logger),
		ConfigLoader:     configLoader,
		ConfigManager:    config.NewManager(dataDir),
		Logger:           logger,
		AppConfig:        appConfig,
		closer:           logger,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil store is replaced by an empty in-memory one.
func NewWithDeps(cfg Config, store domain.Store, configLoader domain.ConfigLoader, logger domain.Logger) *Container {
	if store == nil {
		store = tracker.New()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	appConfig := domain.NewDefaultConfig()
	if configLoader != nil {
		if loaded, err := configLoader.Load(); err == nil {
			appConfig = loaded
		}
	}
	return &Container{
		Store:         store,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.DataDir),
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// OpenStore loads the project store. It fails with domain.ErrNotInitialized
// when the store file does not exist yet.
func (c *Container) OpenStore() (domain.Store, error) {
	if c.Store != nil {
		return c.Store, nil
	}
	if c.StoreInitializer == nil || !c.StoreInitializer.IsInitialized() {
		return nil, domain.ErrNotInitialized
	}
	store, err := filestore.Open(c.Config.StorePath, c.Logger, tracker.WithHistoryLimit(c.AppConfig.History.Limit))
	if err != nil {
		return nil, err
	}
	c.Store = store
	return store, nil
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods. The store-backed ones require OpenStore.

// InitProjectUseCase returns a new InitProject use case.
func (c *Container) InitProjectUseCase() *usecase.InitProject {
	return usecase.NewInitProject(c.StoreInitializer, c.ConfigManager)
}

// NewItemUseCase returns a new NewItem use case.
func (c *Container) NewItemUseCase() *usecase.NewItem {
	return usecase.NewNewItem(c.Store, c.Logger)
}

// ShowItemUseCase returns a new ShowItem use case.
func (c *Container) ShowItemUseCase() *usecase.ShowItem {
	return usecase.NewShowItem(c.Store)
}

// ListItemsUseCase returns a new ListItems use case.
func (c *Container) ListItemsUseCase() *usecase.ListItems {
	return usecase.NewListItems(c.Store)
}

// EditItemUseCase returns a new EditItem use case.
func (c *Container) EditItemUseCase() *usecase.EditItem {
	return usecase.NewEditItem(c.Store, c.Logger)
}

// DeleteItemUseCase returns a new DeleteItem use case.
func (c *Container) DeleteItemUseCase() *usecase.DeleteItem {
	return usecase.NewDeleteItem(c.Store, c.Logger)
}

// ClearSubTasksUseCase returns a new ClearSubTasks use case.
func (c *Container) ClearSubTasksUseCase() *usecase.ClearSubTasks {
	return usecase.NewClearSubTasks(c.Store, c.Logger)
}

// ListSubTasksUseCase returns a new ListSubTasks use case.
func (c *Container) ListSubTasksUseCase() *usecase.ListSubTasks {
	return usecase.NewListSubTasks(c.Store)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	return usecase.NewShowHistory(c.Store)
}

// ImportItemsUseCase returns a new ImportItems use case.
func (c *Container) ImportItemsUseCase() *usecase.ImportItems {
	return usecase.NewImportItems(c.Store, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.DataDir)
}

// Rebase points the container at the project containing dir, replacing every
// dependency. A store opened before is dropped.
func (c *Container) Rebase(dir string, stderr io.Writer) error {
	fresh, err := New(dir, stderr)
	if err != nil {
		return err
	}
	_ = c.Close()
	*c = *fresh
	return nil
}
