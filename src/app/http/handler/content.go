package handler

import (
	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/dto"
	"shootfed/src/app/http/response"
	"shootfed/src/core/domain"
	"shootfed/src/core/usecase"
)

// NewsHandler serves news articles, including the public slug lookup.
type NewsHandler struct {
	*ResourceHandler[domain.NewsArticle, dto.CreateNewsRequest, dto.NewsResponse]
	news *usecase.NewsService
}

func NewNewsHandler(news *usecase.NewsService) *NewsHandler {
	return &NewsHandler{
		ResourceHandler: NewResourceHandler(news, dto.UpdateNews, dto.BindList[dto.NewsQuery], dto.NewNewsResponse),
		news:            news,
	}
}

func (h *NewsHandler) Register(g gin.IRoutes, write gin.HandlerFunc) {
	g.GET("/slug/:slug", h.BySlug)
	h.ResourceHandler.Register(g, write)
}

// BySlug returns a published article.
// GET /news/slug/:slug
func (h *NewsHandler) BySlug(c *gin.Context) {
	var p dto.SlugParam
	if err := dto.BindURI(c, &p); err != nil {
		fail(c, err)
		return
	}
	article, err := h.news.BySlug(c.Request.Context(), p.Slug)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewNewsResponse(article))
}

// MediaHandler serves gallery items and file uploads.
type MediaHandler struct {
	*ResourceHandler[domain.MediaItem, dto.CreateMediaRequest, dto.MediaResponse]
	media *usecase.MediaService
}

func NewMediaHandler(media *usecase.MediaService) *MediaHandler {
	return &MediaHandler{
		ResourceHandler: NewResourceHandler(media, dto.UpdateMedia, dto.BindList[dto.MediaQuery], dto.NewMediaResponse),
		media:           media,
	}
}

func (h *MediaHandler) Register(g gin.IRoutes, write gin.HandlerFunc) {
	g.POST("/upload", write, h.Upload)
	h.ResourceHandler.Register(g, write)
}

// Upload stores a multipart "file" and creates a media item for it.
// POST /media/upload
func (h *MediaHandler) Upload(c *gin.Context) {
	var form dto.UploadMediaForm
	if err := dto.BindForm(c, &form); err != nil {
		fail(c, err)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		fail(c, domain.NewValidationError("file", "a multipart file field named file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	item, err := h.media.Upload(c.Request.Context(), usecase.Upload{
		Body:   f,
		Size:   fh.Size,
		Values: dto.ToValues(&form),
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.NewMediaResponse(item))
}

// ResultHandler serves event results. Results are append-only.
type ResultHandler struct {
	results *usecase.ResultService
}

func NewResultHandler(results *usecase.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

func (h *ResultHandler) Register(g gin.IRoutes, write gin.HandlerFunc) {
	g.POST("", write, h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
}

// POST /results
func (h *ResultHandler) Create(c *gin.Context) {
	var req dto.CreateResultRequest
	if err := dto.BindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	result, err := h.results.Create(c.Request.Context(), dto.ToValues(&req))
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.NewResultResponse(result))
}

// GET /results
func (h *ResultHandler) List(c *gin.Context) {
	params, err := dto.BindList[dto.ResultQuery](c)
	if err != nil {
		fail(c, err)
		return
	}
	page, err := h.results.List(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	response.PageOf(c, page, dto.NewResultResponse)
}

// GET /results/:id
func (h *ResultHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	result, err := h.results.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewResultResponse(result))
}

// AuditHandler lists audit entries.
type AuditHandler struct {
	audit *usecase.AuditService
}

func NewAuditHandler(audit *usecase.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// GET /audit-logs
func (h *AuditHandler) List(c *gin.Context) {
	params, err := dto.BindList[dto.AuditLogQuery](c)
	if err != nil {
		fail(c, err)
		return
	}
	page, err := h.audit.List(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	response.PageOf(c, page, dto.NewAuditLogResponse)
}
