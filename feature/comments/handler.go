package comments

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

// Handler handles HTTP requests for comments.
type Handler struct {
	service *Service
	page    pagination.Options
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, page pagination.Options) *Handler {
	page.SortFields = []string{SortPublishDate}
	return &Handler{service: service, page: page}
}

// RegisterRoutes registers the comment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/comments")
	group.Get("", h.HandleList)
	group.Get("/post/:post_id", h.HandleListByPost)
	group.Get("/user/:user_id", h.HandleListByUser)
	group.Get("/:comment_id", h.HandleGet)
	group.Post("", h.HandleCreate)
	group.Delete("/:comment_id", h.HandleDelete)
}

// Links returns the links of a comment resource.
func Links(base string, c Comment) hateoas.Links {
	return hateoas.Links{
		"self":  hateoas.Href(base, "/api/v1/comments/%s", c.ID),
		"post":  hateoas.Href(base, "/api/v1/posts/%s", c.PostID),
		"owner": hateoas.Href(base, "/api/v1/users/%s", c.OwnerID),
	}
}

func toView(it Item, base string) View {
	return View{
		ID:          it.ID,
		Message:     it.Message,
		Owner:       it.Owner,
		Post:        it.PostID,
		PublishDate: it.PublishDate,
		Links:       Links(base, it.Comment),
	}
}

func (h *Handler) list(c *fiber.Ctx, endpoint string, filter Filter, extra ...hateoas.Param) error {
	page, err := pagination.FromQuery(c, h.page)
	if err != nil {
		return err
	}
	items, total, err := h.service.List(c.UserContext(), filter, page)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list comments", zap.Error(err))
		return err
	}

	base := hateoas.BaseURL(c)
	out := make([]View, len(items))
	for i, it := range items {
		out[i] = toView(it, base)
	}
	return pagination.Send(c, endpoint, page, out, total, extra...)
}

// HandleList returns a page of comments.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param sort_order query string false "Sort order" Enums(asc, desc)
// @Param post query string false "Post ID"
// @Param user query string false "User ID"
// @Success 200 {object} pagination.Response[View]
// @Failure 400 {object} apierror.Envelope
// @Router /api/v1/comments [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	filter := Filter{PostID: c.Query("post"), OwnerID: c.Query("user")}
	return h.list(c, "/api/v1/comments", filter,
		hateoas.Param{Key: "post", Value: filter.PostID},
		hateoas.Param{Key: "user", Value: filter.OwnerID},
	)
}

// HandleListByPost returns the comments of one post.
// @Summary List comments by post
// @Tags comments
// @Produce json
// @Param post_id path string true "Post ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} pagination.Response[View]
// @Router /api/v1/comments/post/{post_id} [get]
func (h *Handler) HandleListByPost(c *fiber.Ctx) error {
	postID := c.Params("post_id")
	return h.list(c, "/api/v1/comments/post/"+url.PathEscape(postID), Filter{PostID: postID})
}

// HandleListByUser returns the comments written by one user.
// @Summary List comments by user
// @Tags comments
// @Produce json
// @Param user_id path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} pagination.Response[View]
// @Router /api/v1/comments/user/{user_id} [get]
func (h *Handler) HandleListByUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	return h.list(c, "/api/v1/comments/user/"+url.PathEscape(userID), Filter{OwnerID: userID})
}

// HandleGet returns one comment.
// @Summary Get comment
// @Tags comments
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} View
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/comments/{comment_id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("comment_id")
	if !validation.IsID(id) {
		return apierror.InvalidID("comment_id", id)
	}
	it, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toView(*it, hateoas.BaseURL(c)))
}

// HandleCreate creates a comment.
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body CreateInput true "Comment"
// @Success 201 {object} View
// @Failure 400 {object} apierror.Envelope
// @Router /api/v1/comments [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in CreateInput
	if err := validation.DecodeBody(c, &in); err != nil {
		return err
	}
	it, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toView(*it, hateoas.BaseURL(c)))
}

// HandleDelete deletes a comment.
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /api/v1/comments/{comment_id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("comment_id")
	if !validation.IsID(id) {
		return apierror.InvalidID("comment_id", id)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	logger.WithRayID(h.service.logger, c).Info("Comment deleted", zap.String("comment_id", id))
	return c.JSON(DeleteResponse{ID: id, Message: i18n.FromCtx(c).Translate(i18n.CommentDeleted)})
}
