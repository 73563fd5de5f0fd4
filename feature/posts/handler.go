package posts

import (
	"net/url"

	"social-network/core/apierror"
	"social-network/core/hateoas"
	"social-network/core/i18n"
	"social-network/core/logger"
	"social-network/core/pagination"
	"social-network/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for posts.
type Handler struct {
	service *Service
	page    pagination.Options
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, page pagination.Options) *Handler {
	page.SortFields = SortFields
	return &Handler{service: service, page: page}
}

// RegisterRoutes registers the post routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/posts")
	group.Get("", h.HandleList)
	group.Get("/user/:user_id", h.HandleListByUser)
	group.Get("/tag/:tag", h.HandleListByTag)
	group.Get("/:post_id", h.HandleGet)
	group.Post("", h.HandleCreate)
	group.Put("/:post_id", h.HandleUpdate)
	group.Delete("/:post_id", h.HandleDelete)
}

// Links returns the links of a post resource.
func Links(base, id, ownerID string) hateoas.Links {
	return hateoas.Links{
		"self":     hateoas.Href(base, "/api/v1/posts/%s", id),
		"owner":    hateoas.Href(base, "/api/v1/users/%s", ownerID),
		"comments": hateoas.Href(base, "/api/v1/comments?post=%s", id),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func toPreview(it Item, lang i18n.Lang, base string) Preview {
	return Preview{
		ID:          it.ID,
		Text:        truncate(it.Text, PreviewTextLength),
		Image:       it.Image,
		Likes:       it.Likes,
		Tags:        it.Tags,
		PublishDate: lang.FormatDate(it.PublishDate),
		Owner:       it.Owner,
		Links:       Links(base, it.ID, it.OwnerID),
	}
}

func toView(it *Item, lang i18n.Lang, base string) View {
	return View{
		ID:          it.ID,
		Text:        it.Text,
		Image:       it.Image,
		Likes:       it.Likes,
		Link:        it.Link,
		Tags:        it.Tags,
		PublishDate: lang.FormatDate(it.PublishDate),
		Owner:       it.Owner,
		Links:       Links(base, it.ID, it.OwnerID),
	}
}

func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("post_id")
	if !validation.IsID(id) {
		return "", apierror.InvalidID("post_id", id)
	}
	return id, nil
}

func (h *Handler) list(c *fiber.Ctx, endpoint string, filter Filter, extra ...hateoas.Param) error {
	page, err := pagination.FromQuery(c, h.page)
	if err != nil {
		return err
	}
	items, total, err := h.service.List(c.UserContext(), filter, page)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list posts", zap.Error(err))
		return err
	}

	lang := i18n.FromCtx(c)
	base := hateoas.BaseURL(c)
	out := make([]Preview, len(items))
	for i, it := range items {
		out[i] = toPreview(it, lang, base)
	}
	return pagination.Send(c, endpoint, page, out, total, extra...)
}

// HandleList returns a page of post previews.
// @Summary List posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param sort_by query string false "Sort field" Enums(publishDate, likes)
// @Param sort_order query string false "Sort order" Enums(asc, desc)
// @Param search query string false "Substring of the text"
// @Param Accept-Language header string false "en or fr"
// @Success 200 {object} pagination.Response[Preview]
// @Failure 400 {object} apierror.Envelope
// @Router /api/v1/posts [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	search := c.Query("search")
	return h.list(c, "/api/v1/posts", Filter{Search: search}, hateoas.Param{Key: "search", Value: search})
}

// HandleListByUser returns the posts of one user. A malformed id yields an empty page.
// @Summary List posts by user
// @Tags posts
// @Produce json
// @Param user_id path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param sort_by query string false "Sort field" Enums(publishDate, likes)
// @Param sort_order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} pagination.Response[Preview]
// @Router /api/v1/posts/user/{user_id} [get]
func (h *Handler) HandleListByUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	return h.list(c, "/api/v1/posts/user/"+url.PathEscape(userID), Filter{OwnerID: userID})
}

// HandleListByTag returns the posts carrying a tag.
// @Summary List posts by tag
// @Tags posts
// @Produce json
// @Param tag path string true "Tag"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param sort_by query string false "Sort field" Enums(publishDate, likes)
// @Param sort_order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} pagination.Response[Preview]
// @Router /api/v1/posts/tag/{tag} [get]
func (h *Handler) HandleListByTag(c *fiber.Ctx) error {
	tag, err := url.PathUnescape(c.Params("tag"))
	if err != nil {
		return apierror.ParamsNotValid(apierror.ParamDetail{Param: "tag", Value: c.Params("tag"), Issue: "Malformed escape sequence"})
	}
	return h.list(c, "/api/v1/posts/tag/"+url.PathEscape(tag), Filter{Tag: tag})
}

// HandleGet returns one post with its owner.
// @Summary Get post
// @Tags posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Param Accept-Language header string false "en or fr"
// @Success 200 {object} View
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/posts/{post_id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	it, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toView(it, i18n.FromCtx(c), hateoas.BaseURL(c)))
}

// HandleCreate creates a post.
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreateInput true "Post"
// @Success 201 {object} View
// @Failure 400 {object} apierror.Envelope
// @Router /api/v1/posts [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in CreateInput
	if err := validation.DecodeBody(c, &in); err != nil {
		return err
	}
	it, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toView(it, i18n.FromCtx(c), hateoas.BaseURL(c)))
}

// HandleUpdate partially updates a post.
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param post body UpdateInput true "Fields to change"
// @Success 200 {object} View
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/posts/{post_id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in UpdateInput
	if err := validation.DecodeBody(c, &in); err != nil {
		return err
	}
	it, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(toView(it, i18n.FromCtx(c), hateoas.BaseURL(c)))
}

// HandleDelete deletes a post.
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/posts/{post_id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	logger.WithRayID(h.service.logger, c).Info("Post deleted", zap.String("post_id", id))
	return c.JSON(DeleteResponse{ID: id, Message: i18n.FromCtx(c).Translate(i18n.PostDeleted)})
}
