package users

import (
	"social-network/core/apierror"
	"social-network/core/hateoas"
	"social-network/core/i18n"
	"social-network/core/logger"
	"social-network/core/pagination"
	"social-network/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for users.
type Handler struct {
	service *Service
	page    pagination.Options
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, page pagination.Options) *Handler {
	page.SortFields = SortFields
	return &Handler{service: service, page: page}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/users")
	group.Get("", h.HandleList)
	group.Get("/:user_id", h.HandleGet)
	group.Post("", h.HandleCreate)
	group.Put("/:user_id", h.HandleUpdate)
	group.Delete("/:user_id", h.HandleDelete)
}

// Links returns the links of a user resource.
func Links(base, id string) hateoas.Links {
	return hateoas.Links{
		"self":     hateoas.Href(base, "/api/v1/users/%s", id),
		"posts":    hateoas.Href(base, "/api/v1/posts/user/%s", id),
		"comments": hateoas.Href(base, "/api/v1/comments/user/%s", id),
	}
}

func toView(u *User, lang i18n.Lang, base string) View {
	return View{
		ID:           u.ID,
		Title:        u.Title,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		DateOfBirth:  lang.FormatDatePtr(u.DateOfBirth),
		RegisterDate: lang.FormatDate(u.RegisterDate),
		Phone:        u.Phone,
		Picture:      u.Picture,
		Location:     u.Location,
		Links:        Links(base, u.ID),
	}
}

func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("user_id")
	if !validation.IsID(id) {
		return "", apierror.InvalidID("user_id", id)
	}
	return id, nil
}

// HandleList returns a page of user previews.
// @Summary List users
// @Description Paginated list of user previews, optionally filtered by title or a search term.
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param sort_by query string false "Sort field" Enums(registerDate, firstName, lastName)
// @Param sort_order query string false "Sort order" Enums(asc, desc)
// @Param title query string false "Exact title" Enums(mr, miss, dr)
// @Param search query string false "Substring of first name, last name or email"
// @Success 200 {object} pagination.Response[Preview]
// @Failure 400 {object} apierror.Envelope
// @Router /api/v1/users [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	page, err := pagination.FromQuery(c, h.page)
	if err != nil {
		return err
	}
	filter := Filter{Title: c.Query("title"), Search: c.Query("search")}

	items, total, err := h.service.List(c.UserContext(), filter, page)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list users", zap.Error(err))
		return err
	}

	base := hateoas.BaseURL(c)
	previews := make([]Preview, len(items))
	for i, u := range items {
		previews[i] = u.Preview()
		previews[i].Links = Links(base, u.ID)
	}
	return pagination.Send(c, "/api/v1/users", page, previews, total,
		hateoas.Param{Key: "title", Value: filter.Title},
		hateoas.Param{Key: "search", Value: filter.Search},
	)
}

// HandleGet returns one user with localized dates.
// @Summary Get user
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Param Accept-Language header string false "en or fr"
// @Success 200 {object} View
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/users/{user_id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	u, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toView(u, i18n.FromCtx(c), hateoas.BaseURL(c)))
}

// HandleCreate creates a user.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateInput true "User"
// @Success 201 {object} View
// @Failure 400 {object} apierror.Envelope
// @Router /api/v1/users [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in CreateInput
	if err := validation.DecodeBody(c, &in); err != nil {
		return err
	}
	u, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toView(u, i18n.FromCtx(c), hateoas.BaseURL(c)))
}

// HandleUpdate partially updates a user. The email cannot change.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param user body UpdateInput true "Fields to change"
// @Success 200 {object} View
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/users/{user_id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in UpdateInput
	if err := validation.DecodeBody(c, &in); err != nil {
		return err
	}
	u, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(toView(u, i18n.FromCtx(c), hateoas.BaseURL(c)))
}

// HandleDelete deletes a user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/users/{user_id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	logger.WithRayID(h.service.logger, c).Info("User deleted", zap.String("user_id", id))
	return c.JSON(DeleteResponse{ID: id, Message: i18n.FromCtx(c).Translate(i18n.UserDeleted)})
}
