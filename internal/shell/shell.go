// Package shell serves a storefront as plain HTML over HTTP. Every page is a
// single form; buttons submit their node id and inputs carry their values, so
// each POST replays one user interaction against the storefront.
package shell

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"larek/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templates embed.FS

const title = "Web-larek"

// Storefront is the part of storefront.Storefront the shell drives.
type Storefront interface {
	Load(ctx context.Context) error
	Dispatch(a view.Action) error
	PageRoot() *view.Node
	ModalRoot() *view.Node
}

// Shell hosts one storefront. Requests are serialized since the storefront
// is single-threaded.
type Shell struct {
	mu     sync.Mutex
	store  Storefront
	app    *fiber.App
	logger zerolog.Logger
}

// New builds the fiber app around store.
func New(store Storefront, logger zerolog.Logger) (*Shell, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, err
	}

	s := &Shell{
		store:  store,
		logger: logger.With().Str("component", "shell").Logger(),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               title,
		DisableStartupMessage: true,
		Views:                 html.NewFileSystem(http.FS(sub), ".html"),
		ErrorHandler:          s.handleError,
	})
	s.app.Use(requestid.New())
	s.app.Use(recover.New())
	s.app.Use(helmet.New())
	s.app.Use(s.logRequests)

	s.app.Get("/", s.index)
	s.app.Post("/act", s.act)
	s.app.Post("/reload", s.reload)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	return s, nil
}

// App exposes the fiber app, mainly for tests.
func (s *Shell) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Shell) Listen(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("storefront shell listening")
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Shell) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Shell) index(c *fiber.Ctx) error {
	s.mu.Lock()
	page := view.HTML(s.store.PageRoot())
	modal := view.HTML(s.store.ModalRoot())
	s.mu.Unlock()

	// Node text and attributes are escaped by view.HTML.
	return c.Render("index", fiber.Map{
		"Title": title,
		"Page":  template.HTML(page),
		"Modal": template.HTML(modal),
	})
}

// act applies the submitted input values, then the clicked button.
func (s *Shell) act(c *fiber.Ctx) error {
	inputs := map[string]string{}
	var clicked string
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		key := string(k)
		switch {
		case key == view.ClickField:
			clicked = string(v)
		case strings.HasPrefix(key, view.InputPrefix):
			inputs[strings.TrimPrefix(key, view.InputPrefix)] = string(v)
		}
	})

	ids := make([]string, 0, len(inputs))
	for id := range inputs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if s.currentValue(id) == inputs[id] {
			continue
		}
		s.dispatch(c, view.Action{Node: id, Kind: view.Input, Value: inputs[id]})
	}
	if clicked != "" {
		s.dispatch(c, view.Action{Node: clicked, Kind: view.Click})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Shell) reload(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Load(c.UserContext()); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "catalog is unavailable")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// currentValue returns the value an input node already holds.
func (s *Shell) currentValue(id string) string {
	for _, root := range []*view.Node{s.store.PageRoot(), s.store.ModalRoot()} {
		if n := root.Find(id); n != nil {
			return n.Props["value"]
		}
	}
	return ""
}

// dispatch forwards an action; stale or disabled targets are logged and skipped.
func (s *Shell) dispatch(c *fiber.Ctx, a view.Action) {
	if err := s.store.Dispatch(a); err != nil {
		s.logger.Warn().Err(err).
			Str("node", a.Node).
			Str("kind", string(a.Kind)).
			Str("request_id", requestID(c)).
			Msg("action ignored")
	}
}

func (s *Shell) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID(c)).
		Msg("http request")
	return err
}

func (s *Shell) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError || code == fiber.StatusBadGateway {
			msg = fe.Message
		}
	}
	s.logger.Error().Err(err).
		Int("status", code).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("request failed")
	return c.Status(code).SendString(msg)
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
