package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/repository"
	"github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/service"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

const maxPageBytes = 1500000

type BrandVoiceCtrl struct {
	svc        service.BrandVoiceService
	guidelines repository.GuidelineRepository
	examples   repository.ExampleRepository
}

func New(svc service.BrandVoiceService, guidelines repository.GuidelineRepository, examples repository.ExampleRepository) *BrandVoiceCtrl {
	return &BrandVoiceCtrl{svc: svc, guidelines: guidelines, examples: examples}
}

func currentUser(c echo.Context) *entities.User { return c.Get("user").(*entities.User) }

func (h *BrandVoiceCtrl) List(c echo.Context) error {
	items, err := h.guidelines.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *BrandVoiceCtrl) Get(c echo.Context) error {
	channel := c.Param("channel")
	return c.JSON(http.StatusOK, map[string]string{
		"channel": channel,
		"content": h.svc.Guideline(channel),
	})
}

type setReq struct {
	Content string `json:"content"`
}

// Set writes a guideline directly, without analysis. Admin only; the
// route is guarded by the role middleware.
func (h *BrandVoiceCtrl) Set(c echo.Context) error {
	channel := c.Param("channel")
	var req setReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Content) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}
	v := &entities.BrandVoice{Channel: channel, Content: req.Content, UpdatedAt: time.Now()}
	if err := h.guidelines.Upsert(v); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, v)
}

func (h *BrandVoiceCtrl) Analyze(c echo.Context) error {
	channel := c.Param("channel")
	res, err := h.svc.Analyze(c.Request().Context(), channel)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

type exampleReq struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

func (h *BrandVoiceCtrl) AddExample(c echo.Context) error {
	var req exampleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := types.CheckLen("text", strings.TrimSpace(req.Text), 20, 0); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	ex := &entities.BrandVoiceExample{
		UserID:       currentUser(c).ID,
		Channel:      req.Channel,
		OriginalText: req.Text,
	}
	if err := h.examples.Create(ex); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ex)
}

type exampleURLReq struct {
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

// AddExampleFromURL fetches a public page and stores its main text as
// a style example.
func (h *BrandVoiceCtrl) AddExampleFromURL(c echo.Context) error {
	var req exampleURLReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url must be http(s)"})
	}
	text, err := fetchMainText(req.URL, maxPageBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "fetch failed: " + err.Error()})
	}
	if strings.TrimSpace(text) == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "no extractable text at url"})
	}
	ex := &entities.BrandVoiceExample{
		UserID:       currentUser(c).ID,
		Channel:      req.Channel,
		OriginalText: text,
	}
	if err := h.examples.Create(ex); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ex)
}

func (h *BrandVoiceCtrl) ListExamples(c echo.Context) error {
	channel := c.QueryParam("channel")
	if channel != "" && !prompt.ValidChannel(channel) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid channel: " + channel})
	}
	items, err := h.examples.List(channel)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *BrandVoiceCtrl) DeleteExample(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.examples.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Example not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// fetchMainText pulls readable text out of an HTML page: main/article
// content first, then headers, paragraphs and list items.
func fetchMainText(u string, maxBytes int) (string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "text/plain") {
		return string(b), nil
	}
	if !strings.Contains(ct, "text/html") {
		return "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n"), nil
}
