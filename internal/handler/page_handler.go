package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"CareMap-App/internal/application"
	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/usecase"
)

//go:embed templates/*.html
var templatesFS embed.FS

// LoadTemplates は埋め込みテンプレートを読み込む
func LoadTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templatesFS, "templates/*.html")
}

// PageHandler HTMLページのハンドラー（マークアップはテンプレート側が担当）
type PageHandler struct {
	dashboard application.DashboardService
	signup    usecase.ProgramSignupUseCase
}

// NewPageHandler は新しいPageHandlerインスタンスを作成
func NewPageHandler(dashboard application.DashboardService, signup usecase.ProgramSignupUseCase) *PageHandler {
	return &PageHandler{
		dashboard: dashboard,
		signup:    signup,
	}
}

// Index GET / - 地図ダッシュボード
func (h *PageHandler) Index(c *gin.Context) {
	query := QueryFromRequest(c)
	view, err := h.dashboard.Search(c.Request.Context(), query)
	if err != nil {
		h.renderError(c, err)
		return
	}
	facets, _ := h.dashboard.Facets(model.FieldCategories)
	areas, _ := h.dashboard.Areas()

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    "동대문구 건강·돌봄센터 지도",
		"View":     view,
		"Query":    query,
		"Selected": selectedSet(query.SelectedFacets),
		"Facets":   facets,
		"Areas":    append([]string{model.AreaAll}, areas...),
		"AreaAll":  model.AreaAll,
	})
}

// About GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title": "소개",
	})
}

// Programs GET /programs - プログラム一覧
func (h *PageHandler) Programs(c *gin.Context) {
	category := c.Query("category")
	programs, err := h.dashboard.Programs(category)
	if err != nil {
		h.renderError(c, err)
		return
	}
	facets, _ := h.dashboard.Facets(model.FieldCategories)
	c.HTML(http.StatusOK, "programs.html", gin.H{
		"Title":      "프로그램 목록",
		"Category":   category,
		"Categories": facets,
		"Programs":   programs,
	})
}

// SignupForm GET /signup
func (h *PageHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title": "프로그램 신청",
		"Form": model.SignupRequest{
			CenterName:  c.Query("center"),
			ProgramName: c.Query("program"),
		},
	})
}

// SignupSubmit POST /signup - 入力内容をそのまま受付メッセージとして表示する
func (h *PageHandler) SignupSubmit(c *gin.Context) {
	var form model.SignupRequest
	if err := c.ShouldBind(&form); err != nil {
		h.renderSignupError(c, form, "입력 형식이 올바르지 않습니다: "+err.Error())
		return
	}

	receipt, err := h.signup.Acknowledge(&form)
	if err != nil {
		h.renderSignupError(c, form, err.Error())
		return
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title":   "프로그램 신청",
		"Form":    form,
		"Receipt": receipt,
	})
}

func (h *PageHandler) renderSignupError(c *gin.Context, form model.SignupRequest, message string) {
	c.HTML(http.StatusBadRequest, "signup.html", gin.H{
		"Title": "프로그램 신청",
		"Form":  form,
		"Error": message,
	})
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if model.IsConfigError(err) || errors.Is(err, model.ErrNoSnapshot) {
		status = http.StatusServiceUnavailable
	}
	c.HTML(status, "error.html", gin.H{
		"Title":   "오류",
		"Message": err.Error(),
	})
}

func selectedSet(facets []string) map[string]bool {
	set := make(map[string]bool, len(facets))
	for _, f := range facets {
		set[f] = true
	}
	return set
}
