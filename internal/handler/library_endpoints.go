package handler

import (
	"net/http"
	"strconv"

	"sightstory/internal/story"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listScenes(c *gin.Context) {
	scenes := h.library.Scenes()
	if raw := c.Query("phase"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !story.Phase(n).Valid() {
			badRequest(c, "phase must be between 1 and 10")
			return
		}
		scenes = h.library.InPhase(story.Phase(n))
	}

	out := make([]sceneResponse, 0, len(scenes))
	for _, sc := range scenes {
		out = append(out, sceneResponse{
			ID:        sc.ID,
			Phase:     sc.Phase,
			PhaseName: sc.Phase.String(),
			Setting:   sc.Setting,
			Words:     sc.Words,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (h *Handler) getUsageSummary(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	summary, err := h.analyticsService.Summary(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
