package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"CareMap-App/internal/application"
	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/usecase"
)

// DashboardHandler センター検索APIのハンドラー
type DashboardHandler struct {
	dashboard application.DashboardService
	signup    usecase.ProgramSignupUseCase
}

// NewDashboardHandler は新しいDashboardHandlerインスタンスを作成
func NewDashboardHandler(dashboard application.DashboardService, signup usecase.ProgramSignupUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		signup:    signup,
	}
}

// QueryFromRequest はクエリパラメータから検索条件を作る
// facet は複数指定可（?facet=노인&facet=청소년）
func QueryFromRequest(c *gin.Context) model.Query {
	return model.Query{
		NameSubstring:  c.Query("name"),
		SelectedFacets: c.QueryArray("facet"),
		SelectedArea:   strings.TrimSpace(c.Query("area")),
		FacetMode:      model.ParseFacetMode(c.Query("mode")),
	}
}

// GetCenters GET /api/centers - 条件に合うセンターとビューポートを取得
func (h *DashboardHandler) GetCenters(c *gin.Context) {
	view, err := h.dashboard.Search(c.Request.Context(), QueryFromRequest(c))
	if err != nil {
		respondError(c, err, "センター検索に失敗しました")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetFacets GET /api/facets - ファセット一覧を取得
func (h *DashboardHandler) GetFacets(c *gin.Context) {
	field := model.DelimitedField(c.DefaultQuery("field", string(model.FieldCategories)))
	facets, err := h.dashboard.Facets(field)
	if err != nil {
		respondError(c, err, "ファセットの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"field":  field,
		"facets": facets,
	})
}

// GetAreas GET /api/areas - 行政洞一覧を取得
func (h *DashboardHandler) GetAreas(c *gin.Context) {
	areas, err := h.dashboard.Areas()
	if err != nil {
		respondError(c, err, "行政洞一覧の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"areas": append([]string{model.AreaAll}, areas...),
	})
}

// GetPrograms GET /api/programs - タグ付きプログラム一覧を取得
func (h *DashboardHandler) GetPrograms(c *gin.Context) {
	programs, err := h.dashboard.Programs(c.Query("category"))
	if err != nil {
		respondError(c, err, "プログラム一覧の取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(programs),
		"programs": programs,
	})
}

// GetBoundaries GET /api/boundaries - 行政洞境界オーバーレイを取得
// 取得失敗時も 200 で warnings を返す
func (h *DashboardHandler) GetBoundaries(c *gin.Context) {
	area := strings.TrimSpace(c.DefaultQuery("area", model.AreaAll))
	c.JSON(http.StatusOK, h.dashboard.Boundaries(c.Request.Context(), area))
}

// PostSignup POST /api/signup - プログラム申込の受付表示（保存しない）
func (h *DashboardHandler) PostSignup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	receipt, err := h.signup.Acknowledge(&req)
	if err != nil {
		respondError(c, err, "申込の受付に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// Health GET /api/health
func (h *DashboardHandler) Health(c *gin.Context) {
	store := h.dashboard.Snapshot()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"centers":   store.Len(),
		"loaded_at": store.LoadedAt(),
	})
}

// respondError はドメインエラーをHTTPステータスに変換する
func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrUnknownField), errors.Is(err, model.ErrInvalidSignup):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNoSnapshot):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
