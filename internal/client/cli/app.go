package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/config"
	"github.com/dmitrijs2005/contactkeeper/internal/client/contacts"
	"github.com/dmitrijs2005/contactkeeper/internal/client/session"
	"github.com/dmitrijs2005/contactkeeper/internal/client/token"
	"github.com/dmitrijs2005/contactkeeper/internal/logging"
)

// App wires the session manager, the contacts service and the interactive
// REPL together. It doubles as the session.Navigator: navigation intents
// become view switches in the loop.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	contacts contacts.Service
	api      *api.Client
	reader   *bufio.Reader
	view     string
}

// NewApp builds the full client object graph from the resolved configuration.
func NewApp(c *config.Config) (*App, error) {
	log := logging.NewZerologLogger(logging.Options{Level: c.LogLevel, Pretty: true})

	tokenPath := c.TokenFile
	if tokenPath == "" {
		p, err := token.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving token path: %w", err)
		}
		tokenPath = p
	}
	tokens := token.NewFileStore(tokenPath)

	apiClient, err := api.New(api.Options{
		BaseURL:    c.APIBaseURL,
		Tokens:     tokens,
		HTTPClient: &http.Client{Timeout: c.RequestTimeout},
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		config:   c,
		log:      log,
		api:      apiClient,
		contacts: contacts.NewService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
		view:     session.TargetLogin,
	}
	app.session = session.NewManager(apiClient, tokens, app, log)
	apiClient.SetSessionExpiredHandler(app.session.HandleSessionExpired)

	return app, nil
}

// Navigate implements session.Navigator. The REPL has no pages to route;
// switching the view label and telling the user is all navigation means
// here.
func (a *App) Navigate(target string) {
	if a.view == target {
		return
	}
	a.view = target
	if target == session.TargetLogin {
		fmt.Println("You are signed out. Use 'login' to sign in.")
	}
}

// Run resolves any stored session and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	a.session.Bootstrap(ctx)
	if s := a.session.Session(); s.Authenticated {
		a.view = session.TargetContacts
		fmt.Printf("Welcome back, %s!\n", s.User.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Session().Authenticated
}

func (a *App) getStatus() string {
	s := a.session.Session()
	if s.User != nil {
		return fmt.Sprintf("(%s)", s.User.Username)
	}
	return ""
}
