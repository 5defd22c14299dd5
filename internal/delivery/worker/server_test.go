package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"articlehub/config"
	"articlehub/internal/delivery/worker/handler"
	"articlehub/internal/domain/constants"
	"articlehub/internal/domain/service"
	mockUsecase "articlehub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewEcho_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	rankingUC := mockUsecase.NewMockRankingUsecase(t)
	articleID := uuid.New()
	rankingUC.EXPECT().SyncArticle(mock.Anything, articleID).Return(nil)

	e := NewEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:    cfg,
			Logger:    logger,
			RankingUC: rankingUC,
		}),
	}, defaultPushPath)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	data, err := json.Marshal(&service.LikeEvent{
		EventID:   uuid.NewString(),
		Type:      constants.EventTypeLikeRemoved,
		ArticleID: articleID.String(),
	})
	require.NoError(t, err)
	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `","messageId":"1"}}`

	req := httptest.NewRequest(http.MethodPost, defaultPushPath, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Request-Id", "worker-test")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "worker-test", rec.Header().Get("X-Request-Id"))
}
