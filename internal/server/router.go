// Package server exposes a minimal browser surface for a Mastodon instance:
// a page rendering the instance's public timeline and a health endpoint.
package server

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/masto-go/mastogo/internal/entity"
)

const (
	timelineRoutePath             = "/"
	healthRoutePath               = "/healthz"
	htmlContentType               = "text/html; charset=utf-8"
	contentTypeHeaderName         = "Content-Type"
	errorMessageTimelineFailure   = "timeline unavailable"
	healthStatusKey               = "status"
	healthStatusOK                = "ok"
	logMessageTimelineFetchFailed = "timeline fetch failure"
	logMessageRenderFailure       = "timeline render failure"
	ginModeRelease                = "release"
	defaultPageSize               = 20
	timelineTemplateName          = "timeline"
)

// timelinePageTemplate renders the fetched statuses. Status content is
// server-sanitized HTML and is embedded as-is.
const timelinePageTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{range .Statuses}}
<article>
<header><strong>{{.Account.DisplayName}}</strong> @{{.Account.Acct}} <time>{{.CreatedAt}}</time></header>
<section>{{.ContentHTML}}</section>
</article>
{{end}}
</body>
</html>
`

// TimelineSource supplies the data the timeline page renders.
type TimelineSource interface {
	PublicTimeline(ctx context.Context, limit int) ([]entity.Status, error)
	Instance(ctx context.Context) (*entity.Instance, error)
}

// RouterConfig configures the HTTP routing for timeline requests.
type RouterConfig struct {
	Source   TimelineSource
	Logger   *zap.Logger
	PageSize int
}

// NewRouter constructs a Gin engine configured with the timeline and health
// handlers.
func NewRouter(configuration RouterConfig) (*gin.Engine, error) {
	logger := configuration.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := configuration.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	pageTemplate, err := template.New(timelineTemplateName).Parse(timelinePageTemplate)
	if err != nil {
		return nil, err
	}

	gin.SetMode(ginModeRelease)
	engine := gin.New()
	engine.Use(gin.Recovery())

	handler := timelineHandler{
		source:       configuration.Source,
		logger:       logger,
		pageSize:     pageSize,
		pageTemplate: pageTemplate,
	}

	engine.GET(timelineRoutePath, handler.serveTimeline)
	engine.GET(healthRoutePath, handler.healthStatus)

	return engine, nil
}

type timelineHandler struct {
	source       TimelineSource
	logger       *zap.Logger
	pageSize     int
	pageTemplate *template.Template
}

type timelinePageStatus struct {
	Account     entity.Account
	CreatedAt   string
	ContentHTML template.HTML
}

type timelinePageData struct {
	Title    string
	Statuses []timelinePageStatus
}

func (handler timelineHandler) serveTimeline(ginContext *gin.Context) {
	requestContext := ginContext.Request.Context()

	var (
		statuses []entity.Status
		instance *entity.Instance
	)
	group, groupContext := errgroup.WithContext(requestContext)
	group.Go(func() error {
		fetched, err := handler.source.PublicTimeline(groupContext, handler.pageSize)
		if err != nil {
			return err
		}
		statuses = fetched
		return nil
	})
	group.Go(func() error {
		fetched, err := handler.source.Instance(groupContext)
		if err != nil {
			return err
		}
		instance = fetched
		return nil
	})
	if err := group.Wait(); err != nil {
		handler.logger.Error(logMessageTimelineFetchFailed, zap.Error(err))
		ginContext.String(http.StatusBadGateway, errorMessageTimelineFailure)
		return
	}

	pageData := timelinePageData{Title: instance.Title}
	for _, status := range statuses {
		displayed := status
		if status.Reblog != nil {
			displayed = *status.Reblog
		}
		pageData.Statuses = append(pageData.Statuses, timelinePageStatus{
			Account:     displayed.Account,
			CreatedAt:   displayed.CreatedAt,
			ContentHTML: template.HTML(displayed.Content),
		})
	}

	ginContext.Writer.Header().Set(contentTypeHeaderName, htmlContentType)
	ginContext.Status(http.StatusOK)
	if err := handler.pageTemplate.Execute(ginContext.Writer, pageData); err != nil {
		handler.logger.Error(logMessageRenderFailure, zap.Error(err))
	}
}

func (handler timelineHandler) healthStatus(ginContext *gin.Context) {
	ginContext.JSON(http.StatusOK, map[string]string{healthStatusKey: healthStatusOK})
}
