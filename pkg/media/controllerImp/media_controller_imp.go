package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burnashoff2016/Yandex-AI/pkg/ai"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/service"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/media/repository"
)

type MediaCtrl struct {
	images   service.ImageResolver
	settings repository.SettingsRepository
}

func New(images service.ImageResolver, settings repository.SettingsRepository) *MediaCtrl {
	return &MediaCtrl{images: images, settings: settings}
}

type generateImageReq struct {
	Prompt  string `json:"prompt"`
	Channel string `json:"channel"`
}

// GenerateImage resolves a standalone image request. A provider
// failure degrades to the placeholder instead of surfacing an error.
func (h *MediaCtrl) GenerateImage(c echo.Context) error {
	var req generateImageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := types.CheckLen("prompt", strings.TrimSpace(req.Prompt), 5, 500); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	url, err := h.images.Resolve(c.Request().Context(), req.Prompt, req.Channel)
	if err != nil {
		url = ai.Placeholder(req.Prompt)
	}
	return c.JSON(http.StatusOK, map[string]string{"prompt": req.Prompt, "image_url": url})
}

type settingsView struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	Enabled bool   `json:"enabled"`
}

func maskKey(key *string) string {
	if key == nil || *key == "" {
		return ""
	}
	r := []rune(*key)
	if len(r) <= 10 {
		return string(r) + "..."
	}
	return string(r[:10]) + "..."
}

func (h *MediaCtrl) GetSettings(c echo.Context) error {
	cur, err := h.settings.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, settingsView{APIKey: maskKey(cur.APIKey), Model: cur.Model, Enabled: cur.Enabled})
}

type updateSettingsReq struct {
	APIKey  *string `json:"api_key"`
	Model   *string `json:"model"`
	Enabled *bool   `json:"enabled"`
}

// UpdateSettings patches the singleton row. Omitted fields keep their
// current value; the key is never echoed back unmasked.
func (h *MediaCtrl) UpdateSettings(c echo.Context) error {
	var req updateSettingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	cur, err := h.settings.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if req.APIKey != nil {
		cur.APIKey = req.APIKey
	}
	if req.Model != nil && *req.Model != "" {
		cur.Model = *req.Model
	}
	if req.Enabled != nil {
		cur.Enabled = *req.Enabled
	}
	cur.UpdatedAt = time.Now()
	if err := h.settings.Update(cur); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, settingsView{APIKey: maskKey(cur.APIKey), Model: cur.Model, Enabled: cur.Enabled})
}
