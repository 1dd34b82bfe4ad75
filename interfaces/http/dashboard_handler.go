package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trending-board/domain/dto"
	"trending-board/domain/model"
	"trending-board/infrastructure/clients/youtube"
	"trending-board/infrastructure/configuration"
	"trending-board/infrastructure/logger"
	"trending-board/infrastructure/utils"
	"trending-board/interfaces/middleware"
	"trending-board/usecase"

	"github.com/gin-gonic/gin"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// Localized user-facing messages; the render boundary converts every fetch
// error kind into one of these and stops the cycle.
const (
	msgTimeout     = "요청 시간이 초과되었습니다. 네트워크 상태를 확인하고 다시 시도하세요."
	msgNetwork     = "네트워크 오류가 발생했습니다"
	msgFetchFailed = "데이터를 불러오는 중 오류가 발생했습니다"
	msgNoVideos    = "표시할 동영상이 없습니다."
	msgNoAPIKey    = "API 키를 찾을 수 없습니다. 로컬 개발 시 프로젝트 루트의 .env 또는 배포 시 secrets.toml에 YOUTUBE_API_KEY를 설정하세요."
)

// IDashboardHandler defines the dashboard HTTP handlers.
type IDashboardHandler interface {
	Dashboard(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	TrendingAPI(ctx *gin.Context)
}

type DashboardHandler struct {
	authUsecase     usecase.IAuthUsecase
	trendingUsecase usecase.ITrendingUsecase
	config          *configuration.Resolver
}

func NewDashboardHandler(
	authUsecase usecase.IAuthUsecase,
	trendingUsecase usecase.ITrendingUsecase,
	config *configuration.Resolver,
) IDashboardHandler {
	return &DashboardHandler{
		authUsecase:     authUsecase,
		trendingUsecase: trendingUsecase,
		config:          config,
	}
}

// Dashboard handles GET / — one full render cycle: auth gate, control
// resolution, cached fetch, list rendering. Each guard stops the cycle.
func (h *DashboardHandler) Dashboard(ctx *gin.Context) {
	sess := middleware.SessionFrom(ctx)
	if !h.authUsecase.RequireLogin(sess) {
		ctx.HTML(http.StatusOK, "login.tmpl", gin.H{"LoginFailed": false})
		return
	}

	region, maxResults := h.controls(ctx)
	view := gin.H{
		"Region":     region,
		"MaxResults": maxResults,
		"User":       sess.User,
	}

	apiKey := h.config.GetConfig(configuration.KeyAPIKey, "")
	if apiKey == "" {
		view["ConfigHelp"] = true
		view["ErrorMessage"] = msgNoAPIKey
		ctx.HTML(http.StatusOK, "dashboard.tmpl", view)
		return
	}

	items, err := h.trendingUsecase.FetchTrending(ctx.Request.Context(), apiKey, region, maxResults)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Trending fetch failed")
		view["ErrorMessage"] = messageForError(err)
		ctx.HTML(http.StatusOK, "dashboard.tmpl", view)
		return
	}
	if len(items) == 0 {
		view["Empty"] = msgNoVideos
		ctx.HTML(http.StatusOK, "dashboard.tmpl", view)
		return
	}

	view["Entries"] = buildEntries(items)
	ctx.HTML(http.StatusOK, "dashboard.tmpl", view)
}

// Login handles POST /login. A successful check sets the session cookie and
// redirects back to /, so the gated content appears on the same interaction.
func (h *DashboardHandler) Login(ctx *gin.Context) {
	if !h.authUsecase.Enabled() {
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	var req model.ReqLogin
	if err := ctx.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while binding login form")
		ctx.HTML(http.StatusOK, "login.tmpl", gin.H{"LoginFailed": true})
		return
	}

	if !h.authUsecase.Login(req) {
		ctx.HTML(http.StatusOK, "login.tmpl", gin.H{"LoginFailed": true})
		return
	}

	token, err := h.authUsecase.IssueSessionToken(req.Username)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while issuing session token")
		ctx.HTML(http.StatusOK, "login.tmpl", gin.H{"LoginFailed": true})
		return
	}
	ctx.SetCookie(middleware.SessionCookie, token, 12*60*60, "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout by dropping the session cookie.
func (h *DashboardHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Refresh handles POST /refresh: the whole cache is invalidated, then the
// dashboard re-renders with the submitted controls preserved.
func (h *DashboardHandler) Refresh(ctx *gin.Context) {
	if err := h.trendingUsecase.Refresh(ctx.Request.Context()); err != nil {
		logger.GetLogger().WithField("error", err).Error("Cache invalidation failed")
	}

	params := url.Values{}
	if region := ctx.PostForm("region"); region != "" {
		params.Set("region", region)
	}
	if max := ctx.PostForm("max"); max != "" {
		params.Set("max", max)
	}
	target := "/"
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	ctx.Redirect(http.StatusSeeOther, target)
}

// TrendingAPI handles GET /api/trending, the JSON twin of the dashboard page.
func (h *DashboardHandler) TrendingAPI(ctx *gin.Context) {
	sess := middleware.SessionFrom(ctx)
	if !h.authUsecase.RequireLogin(sess) {
		ctx.JSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"})
		return
	}

	apiKey := h.config.GetConfig(configuration.KeyAPIKey, "")
	if apiKey == "" {
		ctx.JSON(http.StatusServiceUnavailable, dto.Res{ResponseCode: "503", ResponseMessage: msgNoAPIKey})
		return
	}

	region, maxResults := h.controls(ctx)
	items, err := h.trendingUsecase.FetchTrending(ctx.Request.Context(), apiKey, region, maxResults)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Trending fetch failed")
		ctx.JSON(http.StatusBadGateway, dto.Res{ResponseCode: "502", ResponseMessage: messageForError(err)})
		return
	}

	ctx.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: buildEntries(items)})
}

// controls resolves region and result count: request query first, then
// configuration, then the defaults. The region is uppercased and truncated to
// two characters; an unparsable count falls back to the default.
func (h *DashboardHandler) controls(ctx *gin.Context) (string, int) {
	region := ctx.Query("region")
	if region == "" {
		region = h.config.GetConfig(configuration.KeyRegionCode, usecase.DefaultRegionCode)
	}
	region = strings.ToUpper(strings.TrimSpace(region))
	if len(region) > 2 {
		region = region[:2]
	}
	if region == "" {
		region = usecase.DefaultRegionCode
	}

	maxRaw := ctx.Query("max")
	if maxRaw == "" {
		maxRaw = h.config.GetConfig(configuration.KeyMaxResults, "")
	}
	maxResults := usecase.DefaultMaxResults
	if maxRaw != "" {
		if v, err := strconv.Atoi(maxRaw); err == nil {
			maxResults = v
		}
	}
	if maxResults < 1 {
		maxResults = 1
	}
	if maxResults > 50 {
		maxResults = 50
	}
	return region, maxResults
}

// buildEntries maps raw API items into display entries, preserving API order.
func buildEntries(items []dto.TrendingVideo) []model.VideoItem {
	entries := make([]model.VideoItem, 0, len(items))
	for idx, item := range items {
		title := item.Snippet.Title
		if title == "" {
			title = "제목 없음"
		}
		channel := item.Snippet.ChannelTitle
		if channel == "" {
			channel = "채널 정보 없음"
		}
		thumb := item.Snippet.Thumbnails.Medium.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.High.URL
		}
		watchURL := ""
		if item.ID != "" {
			watchURL = watchURLPrefix + item.ID
		}
		entries = append(entries, model.VideoItem{
			Index:        idx + 1,
			ID:           item.ID,
			Title:        title,
			ChannelTitle: channel,
			ThumbnailURL: thumb,
			Views:        utils.HumanizeCount(item.Statistics.ViewCount),
			WatchURL:     watchURL,
		})
	}
	return entries
}

// messageForError maps a fetch error kind onto its localized message.
func messageForError(err error) string {
	var apiErr *youtube.APIError
	switch {
	case errors.Is(err, youtube.ErrTimeout):
		return msgTimeout
	case errors.Is(err, youtube.ErrNetwork):
		return fmt.Sprintf("%s: %v", msgNetwork, err)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("%s: %v", msgFetchFailed, apiErr)
	default:
		return fmt.Sprintf("%s: %v", msgFetchFailed, err)
	}
}
