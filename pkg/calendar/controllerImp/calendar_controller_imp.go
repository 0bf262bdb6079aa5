package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/calendar/repository"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

const invalidStatusMsg = "Invalid status. Valid values: draft, scheduled, published, cancelled"

type CalendarCtrl struct{ repo repository.CalendarRepository }

func New(repo repository.CalendarRepository) *CalendarCtrl { return &CalendarCtrl{repo} }

func currentUser(c echo.Context) *entities.User { return c.Get("user").(*entities.User) }

type postReq struct {
	GenerationID  *uint          `json:"generation_id"`
	Channel       string         `json:"channel"`
	Content       map[string]any `json:"content"`
	ScheduledDate string         `json:"scheduled_date"`
	Timezone      string         `json:"timezone"`
	Status        string         `json:"status"`
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (h *CalendarCtrl) Create(c echo.Context) error {
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !prompt.ValidChannel(req.Channel) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid channel: " + req.Channel})
	}
	date, ok := parseDate(req.ScheduledDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "scheduled_date must be an ISO date"})
	}
	if req.Status == "" {
		req.Status = entities.PostStatusDraft
	}
	if !entities.ValidPostStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": invalidStatusMsg})
	}
	if req.Timezone == "" {
		req.Timezone = "Europe/Moscow"
	}
	p := &entities.ScheduledPost{
		UserID:        currentUser(c).ID,
		GenerationID:  req.GenerationID,
		Channel:       req.Channel,
		Content:       req.Content,
		ScheduledDate: date,
		Timezone:      req.Timezone,
		Status:        req.Status,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *CalendarCtrl) List(c echo.Context) error {
	var f repository.ListFilter
	if v := c.QueryParam("start_date"); v != "" {
		if t, ok := parseDate(v); ok {
			f.From = t
		}
	}
	if v := c.QueryParam("end_date"); v != "" {
		if t, ok := parseDate(v); ok {
			f.To = t
		}
	}
	if v := c.QueryParam("status"); v != "" {
		if !entities.ValidPostStatus(v) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": invalidStatusMsg})
		}
		f.Status = v
	}
	f.Channel = c.QueryParam("channel")
	items, err := h.repo.List(currentUser(c).ID, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *CalendarCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Scheduled post not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CalendarCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Scheduled post not found"})
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Channel != "" {
		if !prompt.ValidChannel(req.Channel) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid channel: " + req.Channel})
		}
		p.Channel = req.Channel
	}
	if req.ScheduledDate != "" {
		date, ok := parseDate(req.ScheduledDate)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "scheduled_date must be an ISO date"})
		}
		p.ScheduledDate = date
	}
	if req.Status != "" {
		if !entities.ValidPostStatus(req.Status) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": invalidStatusMsg})
		}
		p.Status = req.Status
	}
	if req.Content != nil {
		p.Content = req.Content
	}
	if req.Timezone != "" {
		p.Timezone = req.Timezone
	}
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CalendarCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), currentUser(c).ID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Scheduled post not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
