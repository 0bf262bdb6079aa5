package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/service"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/serviceImp"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

type GenerateCtrl struct{ svc service.ContentService }

func New(svc service.ContentService) *GenerateCtrl { return &GenerateCtrl{svc} }

func currentUser(c echo.Context) *entities.User { return c.Get("user").(*entities.User) }

func validateChannels(channels []string) error {
	if len(channels) == 0 {
		return fmt.Errorf("At least one channel is required")
	}
	for _, ch := range channels {
		if !prompt.ValidChannel(ch) {
			return fmt.Errorf("Invalid channel: %s", ch)
		}
	}
	return nil
}

func (h *GenerateCtrl) Generate(c echo.Context) error {
	var req types.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validateChannels(req.Channels); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	g, err := h.svc.Generate(c.Request().Context(), currentUser(c).ID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}

// GenerateStream streams per-channel results as server-sent events:
// one channel_complete event per requested channel in request order,
// then a final done event with the stored generation id.
func (h *GenerateCtrl) GenerateStream(c echo.Context) error {
	var req types.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validateChannels(req.Channels); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)

	emit := func(ev service.Event) error {
		data, err := json.Marshal(ev.Data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", ev.Name, data); err != nil {
			return err
		}
		resp.Flush()
		return nil
	}

	_, err := h.svc.Stream(c.Request().Context(), currentUser(c).ID, req, emit)
	return err
}

type hashtagsReq struct {
	Text    string `json:"text"`
	Channel string `json:"channel"`
	Count   int    `json:"count"`
}

func (h *GenerateCtrl) Hashtags(c echo.Context) error {
	var req hashtagsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := types.CheckLen("text", req.Text, 10, 0); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Count == 0 {
		req.Count = 5
	}
	if req.Count < 3 {
		req.Count = 3
	}
	if req.Count > 15 {
		req.Count = 15
	}
	return c.JSON(http.StatusOK, h.svc.Hashtags(c.Request().Context(), req.Text, req.Channel, req.Count))
}

func (h *GenerateCtrl) Series(c echo.Context) error {
	var req types.SeriesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Count == 0 {
		req.Count = 3
	}
	if req.Count < 2 {
		req.Count = 2
	}
	if req.Count > 10 {
		req.Count = 10
	}
	if req.Channel != "" && !prompt.ValidChannel(req.Channel) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid channel: " + req.Channel})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	posts := h.svc.Series(c.Request().Context(), req)
	return c.JSON(http.StatusOK, map[string]any{"topic": req.Topic, "posts": posts})
}

func (h *GenerateCtrl) bindPlan(c echo.Context) (types.ContentPlanRequest, error) {
	var req types.ContentPlanRequest
	if err := c.Bind(&req); err != nil {
		return req, fmt.Errorf("bad json")
	}
	if req.DurationDays == 0 {
		req.DurationDays = 7
	}
	if req.DurationDays < 3 {
		req.DurationDays = 3
	}
	if req.DurationDays > 30 {
		req.DurationDays = 30
	}
	if len(req.Channels) == 0 {
		req.Channels = []string{prompt.ChannelTelegram}
	}
	if err := validateChannels(req.Channels); err != nil {
		return req, err
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

func (h *GenerateCtrl) ContentPlan(c echo.Context) error {
	req, err := h.bindPlan(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	plan := h.svc.ContentPlan(c.Request().Context(), req)
	return c.JSON(http.StatusOK, map[string]any{"product": req.Product, "duration_days": req.DurationDays, "plan": plan})
}

func (h *GenerateCtrl) ContentPlanExport(c echo.Context) error {
	req, err := h.bindPlan(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	plan := h.svc.ContentPlan(c.Request().Context(), req)
	data, err := serviceImp.ExportPlanXLSX(plan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="content_plan.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

type audienceReq struct {
	Product     string `json:"product"`
	Description string `json:"description"`
}

func (h *GenerateCtrl) Audience(c echo.Context) error {
	var req audienceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := types.CheckLen("product", req.Product, 10, 500); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := types.CheckLen("description", req.Description, 0, 1000); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.svc.Audience(c.Request().Context(), req.Product, req.Description))
}

type improveReq struct {
	Text       string `json:"text"`
	Channel    string `json:"channel"`
	TargetTone string `json:"target_tone"`
}

func (h *GenerateCtrl) Improve(c echo.Context) error {
	action := c.Param("action")
	if !types.ValidImproveAction(action) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid action. Valid values: shorten, emoji, tone, cta"})
	}
	var req improveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := types.CheckLen("text", req.Text, 10, 0); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	improved := h.svc.Improve(c.Request().Context(), req.Text, req.Channel, action, req.TargetTone)
	return c.JSON(http.StatusOK, map[string]string{"action": action, "original_text": req.Text, "improved_text": improved})
}
