package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/medixpert/medixpert-cli/internal/client/api"
	"github.com/medixpert/medixpert-cli/internal/client/config"
	"github.com/medixpert/medixpert-cli/internal/client/models"
	"github.com/medixpert/medixpert-cli/internal/client/services"
	"github.com/medixpert/medixpert-cli/internal/client/session"
	"github.com/medixpert/medixpert-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionIface is the session-controller surface the command handlers use.
// *services.SessionService satisfies it; tests can provide a stub.
type sessionIface interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
	IsAuthenticated() bool
}

// App ties the session controller and the API client to the interactive
// command surface. It is constructed once at process start; every command
// handler is a method on it.
type App struct {
	config  *config.Config
	logger  logging.Logger
	session sessionIface
	api     api.Client
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session database: %w", err)
	}

	apiClient := api.NewRESTClient(cfg.BaseURL, cfg.ContentType)
	store := session.NewSQLiteStore(db)
	sessionService := services.NewSessionService(apiClient, store, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		session: sessionService,
		api:     apiClient,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any saved session and then blocks in the REPL until the user
// exits. The restore happens before the first prompt renders.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed, continuing signed out", "error", err)
	}

	fmt.Println("MediXpert CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}
