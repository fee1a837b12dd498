package handlers

import (
	"log"
	"net/http"

	"quantlab/internal/api/models"
	"quantlab/internal/data"

	"github.com/gin-gonic/gin"
)

// DatasetHandler lists the price files under the server data directory.
type DatasetHandler struct {
	dataDir string
}

func NewDatasetHandler(dataDir string) *DatasetHandler {
	return &DatasetHandler{dataDir: dataDir}
}

// ListDatasets handles GET /api/v1/datasets
func (h *DatasetHandler) ListDatasets(c *gin.Context) {
	sets, err := data.ListDatasets(h.dataDir)
	if err != nil {
		log.Printf("DatasetHandler: failed to list %s: %v", h.dataDir, err)
		writeError(c, http.StatusInternalServerError, "DATASET_ERROR", err.Error(), nil)
		return
	}
	out := make([]models.DatasetInfo, len(sets))
	for i, d := range sets {
		out[i] = models.DatasetInfo{Name: d.Name, Size: d.Size}
	}
	c.JSON(http.StatusOK, gin.H{"datasets": out, "count": len(out)})
}
