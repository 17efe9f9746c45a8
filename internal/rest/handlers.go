package rest

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/gunlinux/gunlinux.ru/internal/auth"
	"github.com/gunlinux/gunlinux.ru/internal/blog"
)

// PostsFilter is bound from query parameters.
type PostsFilter struct {
	TagID *int
}

type BlogHandler struct {
	posts      *blog.PostService
	categories *blog.CategoryService
	tags       *blog.TagService
	icons      *blog.IconService
	adapter    *auth.Adapter
	tokens     *auth.TokenManager
	pageIDs    []int
	log        *slog.Logger
}

func NewBlogHandler(
	services *blog.Factory,
	adapter *auth.Adapter,
	tokens *auth.TokenManager,
	pageCategoryIDs []int,
	log *slog.Logger,
) *BlogHandler {
	return &BlogHandler{
		posts:      services.Posts(),
		categories: services.Categories(),
		tags:       services.Tags(),
		icons:      services.Icons(),
		adapter:    adapter,
		tokens:     tokens,
		pageIDs:    pageCategoryIDs,
		log:        log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Posts handles GET /api/v1/posts
// @Summary List published posts
// @Description Published blog posts newest first; a tag_id query filters by tag
// @Tags posts
// @Produce json
// @Param tag_id query int false "Filter by tag ID"
// @Success 200 {array} rest.PostSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *BlogHandler) Posts(c echo.Context) error {
	var filter PostsFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	ctx := c.Request().Context()

	if filter.TagID != nil {
		posts, err := h.posts.PostsByTag(ctx, *filter.TagID)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		return c.JSON(http.StatusOK, Map(posts, NewPostSummary))
	}

	posts, err := h.posts.PublishedPosts(ctx)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(posts, NewPostSummary))
}

// PostByAlias handles GET /api/v1/posts/:alias
// @Summary Get a post by alias
// @Description A post is visible when published, or when its category marks it as a page
// @Tags posts
// @Produce json
// @Param alias path string true "Post alias"
// @Success 200 {object} rest.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts/{alias} [get]
func (h *BlogHandler) PostByAlias(c echo.Context) error {
	ctx := c.Request().Context()

	post, err := h.posts.PostByAlias(ctx, c.Param("alias"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	isPage := post.CategoryID != nil && slices.Contains(h.pageIDs, *post.CategoryID)
	if !post.Published() && !isPage {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	full, err := h.posts.PostWithRelations(ctx, post.ID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if full == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	return c.JSON(http.StatusOK, NewPost(*full))
}

// Pages handles GET /api/v1/pages
// @Summary List page posts
// @Description Posts in the configured page categories
// @Tags posts
// @Produce json
// @Success 200 {array} rest.PostSummary
// @Failure 500 {object} map[string]string
// @Router /api/v1/pages [get]
func (h *BlogHandler) Pages(c echo.Context) error {
	pages, err := h.posts.PagePosts(c.Request().Context(), h.pageIDs)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(pages, NewPostSummary))
}

// PostTags handles GET /api/v1/posts/:alias/tags
// @Summary List the tags of a post
// @Tags tags
// @Produce json
// @Param alias path string true "Post alias"
// @Success 200 {array} rest.Tag
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts/{alias}/tags [get]
func (h *BlogHandler) PostTags(c echo.Context) error {
	ctx := c.Request().Context()

	post, err := h.posts.PostByAlias(ctx, c.Param("alias"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	tags, err := h.tags.TagsByPost(ctx, post.ID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

// TagPosts handles GET /api/v1/tags/:alias/posts
// @Summary List the posts carrying a tag
// @Tags tags
// @Produce json
// @Param alias path string true "Tag alias"
// @Success 200 {array} rest.PostSummary
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/tags/{alias}/posts [get]
func (h *BlogHandler) TagPosts(c echo.Context) error {
	ctx := c.Request().Context()

	tag, err := h.tags.TagByAlias(ctx, c.Param("alias"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if tag == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "tag not found"})
	}

	posts, err := h.posts.PostsByTag(ctx, tag.ID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(posts, NewPostSummary))
}

// Categories handles GET /api/v1/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	categories, err := h.categories.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// Tags handles GET /api/v1/tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *BlogHandler) Tags(c echo.Context) error {
	tags, err := h.tags.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

// Icons handles GET /api/v1/icons
// @Summary List icons
// @Tags icons
// @Produce json
// @Success 200 {array} rest.Icon
// @Failure 500 {object} map[string]string
// @Router /api/v1/icons [get]
func (h *BlogHandler) Icons(c echo.Context) error {
	icons, err := h.icons.Icons(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(icons, NewIcon))
}

// Login handles POST /api/v1/login
// @Summary Authenticate and start a session
// @Description Returns a session token; wrong password and unknown name are indistinguishable
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/login [post]
func (h *BlogHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.adapter.AuthenticateAndLogin(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, LoginResponse{Token: token, Name: user.Name})
}
