package handler

import (
	"log/slog"
	"net/http"

	"articlehub/internal/delivery/api/middleware"
	"articlehub/internal/delivery/api/response"
	"articlehub/internal/domain/entity"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ArticleHandlerParams holds dependencies for ArticleHandler, injected by Fx.
type ArticleHandlerParams struct {
	fx.In

	ArticleUC usecase.ArticleUsecase
	LikeUC    usecase.LikeUsecase
	Logger    *slog.Logger
}

// ArticleHandler serves the article endpoints.
type ArticleHandler struct {
	articleUC usecase.ArticleUsecase
	likeUC    usecase.LikeUsecase
	logger    *slog.Logger
}

// NewArticleHandler is the constructor for ArticleHandler
func NewArticleHandler(params ArticleHandlerParams) *ArticleHandler {
	return &ArticleHandler{
		articleUC: params.ArticleUC,
		likeUC:    params.LikeUC,
		logger:    params.Logger,
	}
}

// CreateArticleRequest is the body of POST /articles.
type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"desc" validate:"max=10000"`
}

// List returns every article, newest first.
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.articleUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, "Articles fetched successfully", newArticleListResponse(articles))
}

// Get returns one article by slug.
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.articleUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	return response.OK(c, "Article details fetched successfully", newArticleResponse(article))
}

// Create publishes an article for the authenticated user.
func (h *ArticleHandler) Create(c echo.Context) error {
	if _, ok := middleware.GetUser(c); !ok {
		return domainerrors.ErrUnauthorizedUser
	}

	var req CreateArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	article, err := h.articleUC.Create(c.Request().Context(), &usecase.CreateArticleInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Article created successfully", newArticleResponse(article))
}

// ToggleLike likes the article for the authenticated user, or removes an
// existing like.
func (h *ArticleHandler) ToggleLike(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthorizedUser
	}

	action, err := h.likeUC.ToggleLike(c.Request().Context(), user.ID, c.Param("slug"))
	if err != nil {
		return err
	}

	if action == entity.LikeAdded {
		return response.OK(c, "Like added successfully", nil)
	}

	return response.OK(c, "Like removed successfully", nil)
}

// ShareQR renders a PNG QR code linking to the article.
func (h *ArticleHandler) ShareQR(c echo.Context) error {
	png, err := h.articleUC.ShareQRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
