package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Refresh dataset now
// @Description  Fetches the feed once. On failure the previous dataset keeps being served.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, fetched_at, countries"
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/admin/refresh [post]
// @Security     BearerAuth
func (h *Handler) refreshDataset(c *gin.Context) {
	uid, _ := c.Get(ctxUserID)
	snap, err := h.services.Dataset.Refresh(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusBadGateway, errRefreshFailed, "admin_refresh_failed", err, "user_id", uid)
		return
	}
	if h.log != nil {
		h.log.Infow("admin_refresh_done", "user_id", uid, "countries", len(snap.Dataset))
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "refreshed",
		"fetched_at": snap.FetchedAt,
		"countries":  len(snap.Dataset),
	})
}
