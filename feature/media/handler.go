package media

import (
	"strconv"
	"strings"

	"social-network/core/apierror"
	"social-network/core/hateoas"
	"social-network/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles media uploads and downloads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the media routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/media")
	group.Post("", h.HandleUpload)
	group.Get("/:name", h.HandleDownload)
}

func (h *Handler) objectURL(base, name string) string {
	if public := strings.TrimRight(h.service.cfg.PublicURL, "/"); public != "" {
		return public + "/" + Prefix + name
	}
	return hateoas.Href(base, "/api/v1/media/%s", name).Href
}

// HandleUpload stores the multipart field "file".
// @Summary Upload media
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} Object
// @Failure 400 {object} apierror.Envelope
// @Router /api/v1/media [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apierror.BodyField("file", "", "Field required")
	}
	f, err := fh.Open()
	if err != nil {
		return apierror.BodyField("file", fh.Filename, "Could not read the uploaded file")
	}
	defer f.Close()

	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name, err := h.service.Upload(c.UserContext(), fh.Filename, contentType, fh.Size, f)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Upload failed", zap.String("filename", fh.Filename), zap.Error(err))
		return err
	}

	base := hateoas.BaseURL(c)
	return c.Status(fiber.StatusCreated).JSON(Object{
		Key:         Prefix + name,
		URL:         h.objectURL(base, name),
		Size:        fh.Size,
		ContentType: contentType,
		Links:       hateoas.Links{"self": hateoas.Href(base, "/api/v1/media/%s", name)},
	})
}

// HandleDownload streams an uploaded object.
// @Summary Download media
// @Tags media
// @Produce octet-stream
// @Param name path string true "Object name"
// @Success 200 {file} file
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/media/{name} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name := c.Params("name")
	if !ValidName(name) {
		return apierror.InvalidID("name", name)
	}
	obj, info, err := h.service.Open(c.UserContext(), name)
	if err != nil {
		return err
	}

	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	if info.ETag != "" {
		c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
	}
	// fasthttp closes obj once the body is written.
	return c.SendStream(obj, int(info.Size))
}
