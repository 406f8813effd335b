package handler

import (
	"log"
	"net/http"

	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// RunSnapshot handles POST /api/snapshots/run, triggering an immediate
// availability snapshot of all hospitals outside the cron schedule.
func (h *SnapshotHandler) RunSnapshot(c *gin.Context) {
	recorded, err := h.snapshotService.RunManual(currentUserID(c))
	if err != nil {
		log.Printf("Manual snapshot failed: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to record snapshots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Snapshot recorded.",
		"hospitals": recorded,
	})
}
