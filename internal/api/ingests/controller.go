package ingests

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Videomania/internal/api/httperr"
	"github.com/hbomb79/Videomania/internal/ingest"
	"github.com/labstack/echo/v4"
)

type (
	// IngestDto is the response used by endpoints that return
	// the items being ingested (e.g., list, get)
	IngestDto struct {
		ID        uuid.UUID              `json:"id"`
		Container string                 `json:"container"`
		BlobName  string                 `json:"blobName"`
		Source    string                 `json:"source"`
		State     ingest.IngestItemState `json:"state"`
		Stage     ingest.State           `json:"stage"`
		VideoID   string                 `json:"videoId,omitempty"`
		Error     string                 `json:"error,omitempty"`
		CreatedAt time.Time              `json:"createdAt"`
	}

	Service interface {
		AllItems() []*ingest.IngestItem
		Item(itemID uuid.UUID) *ingest.IngestItem
		RemoveItem(itemID uuid.UUID) error
	}

	// Controller is the struct which is responsible for defining the
	// routes for this controller. Additionally, it holds the reference to
	// the service used to retrieve information about ingests.
	Controller struct {
		service Service
	}
)

func New(serv Service) *Controller {
	return &Controller{service: serv}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.GET("/ingests", controller.list)
	eg.GET("/ingests/:id", controller.get)
	eg.DELETE("/ingests/:id", controller.delete)
}

// list returns all the ingests - represented as DTOs - from the ingest service.
func (controller *Controller) list(ec echo.Context) error {
	items := controller.service.AllItems()
	dtos := make([]*IngestDto, len(items))
	for k, v := range items {
		dtos[k] = NewDto(v)
	}

	return ec.JSON(http.StatusOK, dtos)
}

// get uses the 'id' path param from the context and retrieves the ingest from the
// service. If found, a DTO representing the ingest is returned
func (controller *Controller) get(ec echo.Context) error {
	id, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		return httperr.BadRequest("Ingest ID is not a valid UUID")
	}

	item := controller.service.Item(id)
	if item == nil {
		return httperr.NotFound("Ingest not found")
	}

	return ec.JSON(http.StatusOK, NewDto(item))
}

// delete uses the 'id' path param from the context and drops the ingest
// from the service. Items currently being ingested cannot be dropped.
func (controller *Controller) delete(ec echo.Context) error {
	id, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		return httperr.BadRequest("Ingest ID is not a valid UUID")
	}

	if err := controller.service.RemoveItem(id); err != nil {
		if errors.Is(err, ingest.ErrItemNotFound) {
			return httperr.NotFound("Ingest not found")
		}
		return httperr.BadRequest(err.Error())
	}

	return ec.NoContent(http.StatusOK)
}

// NewDto creates a IngestDto using the IngestItem model.
func NewDto(item *ingest.IngestItem) *IngestDto {
	return &IngestDto{
		ID:        item.ID,
		Container: item.Event.Container,
		BlobName:  item.Event.BlobName,
		Source:    item.Event.Source,
		State:     item.State,
		Stage:     item.Stage,
		VideoID:   item.VideoID,
		Error:     item.Error,
		CreatedAt: item.CreatedAt,
	}
}
