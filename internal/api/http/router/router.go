package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MTomala-IT/storeapi/internal/api/http/handler"
	"github.com/MTomala-IT/storeapi/internal/api/http/middleware"
	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

// maxUploadSize caps request bodies, and with them multipart uploads.
const maxUploadSize = 10 << 20

// Services groups what the HTTP layer calls into.
type Services struct {
	Auth     handler.AuthService
	Resolver middleware.UserResolver
	Post     handler.PostService
	Upload   handler.UploadService
	Notifier handler.Notifier
	Pinger   handler.Pinger
}

// Options tunes the router.
type Options struct {
	// BaseURL prefixes confirmation links; empty uses the request URL.
	BaseURL             string
	CorrelationIDLength int
}

// Router assembles the fiber application.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(services Services, options Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the application with its middleware chain and routes.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "storeapi",
		BodyLimit:             maxUploadSize,
		DisableStartupMessage: true,
		ErrorHandler:          handler.NewErrorHandler(r.logger),
	})

	logging := middleware.NewLogging(r.logger, r.options.CorrelationIDLength)
	authenticate := middleware.NewAuthenticate(r.services.Resolver, r.contextManager, r.logger)

	app.Use(
		middleware.RequestID(),
		logging.Handle,
		recover.New(),
		helmet.New(),
	)

	r.registerHealthRoutes(app)
	r.registerAuthRoutes(app)
	r.registerPostRoutes(app, authenticate)
	r.registerUploadRoutes(app, authenticate)

	return app
}

func (r *Router) registerHealthRoutes(app *fiber.App) {
	health := handler.NewHealth(r.services.Pinger, r.logger)
	app.Get("/healthz", health.Check)
}

func (r *Router) registerAuthRoutes(app *fiber.App) {
	auth := handler.NewAuth(r.services.Auth, r.services.Notifier, r.options.BaseURL, r.logger)

	app.Post("/register", auth.Register)
	app.Post("/token", auth.Token)
	app.Get("/confirm/:token", auth.Confirm)
}

func (r *Router) registerPostRoutes(app *fiber.App, authenticate *middleware.Authenticate) {
	post := handler.NewPost(r.services.Post, r.contextManager, r.logger)

	app.Post("/post", authenticate.Handle, post.CreatePost)
	app.Get("/post", post.ListPosts)
	app.Get("/post/:id", post.GetPost)
	app.Get("/post/:id/comment", post.ListComments)
	app.Post("/comment", authenticate.Handle, post.CreateComment)
	app.Post("/like", authenticate.Handle, post.LikePost)
}

func (r *Router) registerUploadRoutes(app *fiber.App, authenticate *middleware.Authenticate) {
	upload := handler.NewUpload(r.services.Upload, r.contextManager, r.logger)
	app.Post("/upload", authenticate.Handle, upload.Upload)
}
