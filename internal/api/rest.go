package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Videomania/internal/api/comments"
	"github.com/hbomb79/Videomania/internal/api/httperr"
	"github.com/hbomb79/Videomania/internal/api/ingests"
	"github.com/hbomb79/Videomania/internal/api/uploads"
	"github.com/hbomb79/Videomania/internal/api/videos"
	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logger.Get("API")

type (
	RestConfig struct {
		HostAddr      string `yaml:"host_address" env:"API_HOST_ADDR" env-default:"0.0.0.0:8080"`
		MaxUploadMB   int64  `yaml:"max_upload_mb" env:"API_MAX_UPLOAD_MB" env-default:"500"`
		DefaultUserID string `yaml:"default_user_id" env:"API_DEFAULT_USER_ID" env-default:"TestUser"`
	}

	controller interface {
		SetRoutes(*echo.Group)
	}

	// dataStore represents a union of all the controller store requirements
	dataStore interface {
		uploads.Store
		videos.Store
		comments.Store
	}

	// blobStore represents a union of all the controller blob requirements
	blobStore interface {
		uploads.BlobStore
		videos.BlobStore
	}

	// Dependencies holds everything the controllers need to serve requests.
	Dependencies struct {
		Store         dataStore
		Blobs         blobStore
		IngestService ingests.Service
		BlobConfig    blob.Config
		AllowFLV      bool
	}

	// The RestGateway is a thin-wrapper around the Echo HTTP router. It's sole responsbility
	// is to create the routes Videomania exposes and serve them until cancelled.
	RestGateway struct {
		config            *RestConfig
		ec                *echo.Echo
		uploadController  controller
		videoController   controller
		commentController controller
		ingestController  controller
	}
)

// NewRestGateway constructs the Echo router and populates it with all the
// routes defined by the various controllers.
func NewRestGateway(config *RestConfig, deps Dependencies) *RestGateway {
	ec := echo.New()
	ec.OnAddRouteHandler = func(host string, route echo.Route, handler echo.HandlerFunc, middleware []echo.MiddlewareFunc) {
		log.Emit(logger.DEBUG, "Registered new route %s %s\n", route.Method, route.Path)
	}
	ec.HidePort = true
	ec.HideBanner = true
	ec.HTTPErrorHandler = httperr.GetHTTPErrorHandler()

	validate := validator.New()
	maxUploadBytes := config.MaxUploadMB * 1024 * 1024
	gateway := &RestGateway{
		config: config,
		ec:     ec,
		uploadController: uploads.New(validate, uploads.Config{
			VideosContainer:   deps.BlobConfig.VideosContainer,
			MaxUploadBytes:    maxUploadBytes,
			DefaultUserID:     config.DefaultUserID,
			AllowFLV:          deps.AllowFLV,
			UploadURLValidity: deps.BlobConfig.UploadURLValidity(),
		}, deps.Store, deps.Blobs),
		videoController: videos.New(videos.Config{
			VideosContainer:     deps.BlobConfig.VideosContainer,
			ThumbnailsContainer: deps.BlobConfig.ThumbnailsContainer,
			ProcessedContainer:  deps.BlobConfig.ProcessedContainer,
			ReadURLValidity:     deps.BlobConfig.ReadURLValidity(),
		}, deps.Store, deps.Blobs),
		commentController: comments.New(validate, deps.Store),
		ingestController:  ingests.New(deps.IngestService),
	}

	ec.Use(middleware.Logger())
	ec.Use(middleware.Recover())
	// Multipart framing adds overhead to the upload itself; the precise file
	// size limit is enforced by the uploads controller.
	ec.Use(middleware.BodyLimit(fmt.Sprintf("%dM", config.MaxUploadMB+1)))

	ec.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiGroup := ec.Group("/api")
	gateway.uploadController.SetRoutes(apiGroup)
	gateway.videoController.SetRoutes(apiGroup)
	gateway.commentController.SetRoutes(apiGroup)
	gateway.ingestController.SetRoutes(apiGroup)

	return gateway
}

// ServeHTTP allows the gateway to be driven directly by an HTTP server or test harness.
func (gateway *RestGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gateway.ec.ServeHTTP(w, r)
}

func (gateway *RestGateway) Run(parentCtx context.Context) error {
	ctx, ctxCancel := context.WithCancelCause(parentCtx)
	wg := &sync.WaitGroup{}

	// Start echo router
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Emit(logger.INFO, "Serving API on %s\n", gateway.config.HostAddr)
		if err := gateway.ec.Start(gateway.config.HostAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ctxCancel(err)
		}
	}()

	// Wait for cancellation, then drain in-flight requests
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := gateway.ec.Shutdown(shutdownCtx); err != nil {
		log.Warnf("API did not shut down cleanly: %v\n", err)
		gateway.ec.Close()
	}

	wg.Wait()

	// Return cancellation cause if any, otherwise nil as parent context
	// cancellation is not an error case we should report.
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}
