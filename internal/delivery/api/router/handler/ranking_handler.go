package handler

import (
	"strconv"

	"articlehub/internal/delivery/api/response"
	"articlehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultRankingSize = 10
	maxRankingSize     = 100
)

// RankingHandlerParams holds dependencies for RankingHandler, injected by Fx.
type RankingHandlerParams struct {
	fx.In

	ArticleUC usecase.ArticleUsecase
}

// RankingHandler serves the most liked articles.
type RankingHandler struct {
	articleUC usecase.ArticleUsecase
}

func NewRankingHandler(params RankingHandlerParams) *RankingHandler {
	return &RankingHandler{articleUC: params.ArticleUC}
}

// TopArticles handles GET /rankings/articles?top=N.
func (h *RankingHandler) TopArticles(c echo.Context) error {
	top := defaultRankingSize
	if raw := c.QueryParam("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRankingSize {
			return response.NewValidationError(map[string]string{
				"top": "must be an integer between 1 and " + strconv.Itoa(maxRankingSize),
			})
		}
		top = n
	}

	articles, err := h.articleUC.TopArticles(c.Request().Context(), top)
	if err != nil {
		return err
	}

	return response.OK(c, "Article ranking fetched successfully", newArticleListResponse(articles))
}
