package http

import (
	"errors"
	"net/http"

	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/feed/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	sessions    *usecase.SessionManager
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, sessions *usecase.SessionManager) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		sessions:    sessions,
	}
}

type FiltersRequest struct {
	Category string `json:"category"`
	Quick    string `json:"quick"`
}

type SessionResponse struct {
	SessionID string       `json:"session_id"`
	Page      *entity.Page `json:"page"`
}

// GetFeed godoc
// @Summary      Get one feed page
// @Description  Newest-first page of live listings with premium slots tagged
// @Tags         feed
// @Produce      json
// @Param        category query string false "Category filter"
// @Param        quick    query string false "Quick filter key"
// @Param        cursor   query string false "Continuation cursor"
// @Success      200  {object}  entity.Page
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	filters := entity.Filters{
		Category: c.Query("category"),
		Quick:    c.Query("quick"),
	}

	page, err := h.feedUseCase.GetPage(c.Request.Context(), filters, c.Query("cursor"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetQuickFilters godoc
// @Summary      List the quick filter chips
// @Tags         feed
// @Produce      json
// @Success      200  {object}  map[string][]entity.QuickFilter
// @Router       /feed/quick-filters [get]
func (h *FeedHandler) GetQuickFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quick_filters": h.feedUseCase.QuickFilters()})
}

// CreateSession godoc
// @Summary      Start a scroll session
// @Description  Creates a session with the given filters and loads the first page
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        request body FiltersRequest false "Initial filters"
// @Success      201  {object}  SessionResponse
// @Failure      500  {object}  map[string]string
// @Router       /feed/sessions [post]
func (h *FeedHandler) CreateSession(c *gin.Context) {
	var req FiltersRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	id, paginator := h.sessions.Create(entity.Filters{Category: req.Category, Quick: req.Quick})
	if err := paginator.LoadInitial(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{SessionID: id, Page: paginator.Snapshot()})
}

// GetSession godoc
// @Summary      Get a scroll session's accumulated feed
// @Tags         feed
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /feed/sessions/{id} [get]
func (h *FeedHandler) GetSession(c *gin.Context) {
	paginator, err := h.session(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("id"), Page: paginator.Snapshot()})
}

// LoadMore godoc
// @Summary      Load the session's next page
// @Description  No-op while a load is in flight or once the stream is exhausted
// @Tags         feed
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /feed/sessions/{id}/more [post]
func (h *FeedHandler) LoadMore(c *gin.Context) {
	paginator, err := h.session(c)
	if err != nil {
		return
	}

	if err := paginator.LoadMore(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("id"), Page: paginator.Snapshot()})
}

// SetFilters godoc
// @Summary      Change the session's filters
// @Description  Clears the accumulated feed and loads the first page for the new filters
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body FiltersRequest true "New filters"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /feed/sessions/{id}/filters [put]
func (h *FeedHandler) SetFilters(c *gin.Context) {
	paginator, err := h.session(c)
	if err != nil {
		return
	}

	var req FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paginator.SetFilters(entity.Filters{Category: req.Category, Quick: req.Quick})
	if err := paginator.LoadInitial(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("id"), Page: paginator.Snapshot()})
}

func (h *FeedHandler) session(c *gin.Context) (*usecase.Paginator, error) {
	paginator, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, err
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, err
	}
	return paginator, nil
}
