package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"sightstory/internal/models"
	"sightstory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) composeStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	var req composeRequest
	if !bindJSON(c, &req) {
		return
	}

	words, err := collectTargetWords(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) > maxProtagonistName {
		handleServiceError(c, fmt.Errorf("%w: name longer than %d characters", models.ErrInvalidInput, maxProtagonistName))
		return
	}

	c.JSON(http.StatusOK, h.storyService.Compose(c.Request.Context(), userID, words, name))
}

// collectTargetWords merges the list and free-text forms and enforces the
// request limits. Deduplication is left to the composer.
func collectTargetWords(req composeRequest) ([]string, error) {
	words := append([]string(nil), req.Words...)
	words = append(words, strings.FieldsFunc(req.Text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})...)

	if len(words) > maxTargetWords {
		return nil, fmt.Errorf("%w: at most %d target words allowed", models.ErrInvalidInput, maxTargetWords)
	}
	for _, w := range words {
		if utf8.RuneCountInString(strings.TrimSpace(w)) > maxTargetWordLen {
			return nil, fmt.Errorf("%w: target word longer than %d characters", models.ErrInvalidInput, maxTargetWordLen)
		}
	}
	return words, nil
}

func (h *Handler) saveStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	var req saveStoryRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.storyService.Save(c.Request.Context(), userID, service.SaveStoryInput{
		Title:            req.Title,
		ProtagonistName:  req.ProtagonistName,
		Sentences:        req.Sentences,
		TargetWords:      req.TargetWords,
		UsedWords:        req.UsedWords,
		TotalTargetWords: req.TotalTargetWords,
		CoveragePercent:  req.CoveragePercent,
		ScenesUsed:       req.ScenesUsed,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) listStories(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	items, next, err := h.storyService.List(c.Request.Context(), userID, c.Query("cursor"), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse[models.StorySummary]{Data: items, NextCursor: next})
}

func (h *Handler) getStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	storyID, ok := parseStoryID(c)
	if !ok {
		return
	}

	saved, err := h.storyService.Get(c.Request.Context(), userID, storyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	storyID, ok := parseStoryID(c)
	if !ok {
		return
	}

	if err := h.storyService.Delete(c.Request.Context(), userID, storyID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) shareStory(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	storyID, ok := parseStoryID(c)
	if !ok {
		return
	}

	var req shareStoryRequest
	if !bindJSON(c, &req) {
		return
	}

	url, err := h.storyService.Share(c.Request.Context(), userID, storyID, service.ShareInput{
		RecipientEmail: req.RecipientEmail,
		Message:        req.Message,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, shareStoryResponse{ShareURL: url})
}

func (h *Handler) getSharedStory(c *gin.Context) {
	view, err := h.storyService.GetShared(c.Request.Context(), c.Param("token"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func parseStoryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid story id")
		return uuid.Nil, false
	}
	return id, true
}
