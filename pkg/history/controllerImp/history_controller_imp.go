package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/history/repository"
)

type HistoryCtrl struct{ repo repository.HistoryRepository }

func New(repo repository.HistoryRepository) *HistoryCtrl { return &HistoryCtrl{repo} }

func currentUser(c echo.Context) *entities.User { return c.Get("user").(*entities.User) }

func (h *HistoryCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}
	items, err := h.repo.ListByUser(currentUser(c).ID, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items, "limit": limit, "offset": offset})
}

func (h *HistoryCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.repo.FindByID(uint(id), currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Generation not found"})
	}
	return c.JSON(http.StatusOK, g)
}

type saveReq struct {
	IsSaved *bool `json:"is_saved"`
}

func (h *HistoryCtrl) Save(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req saveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	saved := true
	if req.IsSaved != nil {
		saved = *req.IsSaved
	}
	if err := h.repo.MarkSaved(uint(id), currentUser(c).ID, saved); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Generation not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": id, "is_saved": saved})
}

func (h *HistoryCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), currentUser(c).ID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Generation not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
