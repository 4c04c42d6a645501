package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AkhilKonduru1/Eventure/internal/adventure"
	"github.com/AkhilKonduru1/Eventure/internal/middleware"
	"github.com/AkhilKonduru1/Eventure/internal/store"
	"github.com/AkhilKonduru1/Eventure/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// fallbackLocation is used when neither the request nor the session
// carries a location.
const fallbackLocation = "your area"

// AdventureHandler serves discovery, saving and the memories list.
type AdventureHandler struct {
	Generator *adventure.Generator
	Saved     *store.SavedAdventureStore
}

func NewAdventureHandler(gen *adventure.Generator, saved *store.SavedAdventureStore) *AdventureHandler {
	return &AdventureHandler{
		Generator: gen,
		Saved:     saved,
	}
}

type discoverReq struct {
	Location       string `json:"location"`
	MoodFilter     string `json:"mood_filter"`
	DurationFilter string `json:"duration_filter"`
	Count          *int   `json:"count"` // pointer: absent differs from explicit 0
}

func (h *AdventureHandler) Discover(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	// every field is optional; an absent or malformed body means defaults
	var req discoverReq
	_ = c.ShouldBindJSON(&req)

	location := req.Location
	if location == "" {
		location = claims.UserLocation
	}
	if location == "" {
		location = fallbackLocation
	}
	moodFilter := req.MoodFilter
	if moodFilter == "" {
		moodFilter = adventure.FilterAll
	}
	durationFilter := req.DurationFilter
	if durationFilter == "" {
		durationFilter = adventure.FilterAll
	}
	count := adventure.DefaultCount
	if req.Count != nil {
		count = *req.Count
	}

	adventures, err := h.Generator.Discover(location, moodFilter, durationFilter, count)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to generate adventures: %v", err))
		return
	}

	util.Success(c, util.Response{"adventures": adventures})
}

type saveReq struct {
	AdventureID string `json:"adventure_id"`
}

func (h *AdventureHandler) Save(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil || req.AdventureID == "" {
		util.Error(c, http.StatusBadRequest, "Adventure ID required")
		return
	}

	if _, err := h.Saved.Save(claims.UserID, req.AdventureID); err != nil {
		if errors.Is(err, store.ErrAlreadySaved) {
			util.Error(c, http.StatusBadRequest, "Adventure already saved")
			return
		}
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to save adventure: %v", err))
		return
	}

	util.Success(c, util.Response{"success": true})
}

func (h *AdventureHandler) Memories(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	recs, err := h.Saved.ListForUser(claims.UserID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to get memories: %v", err))
		return
	}

	memories := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		memories = append(memories, gin.H{
			"id":           rec.ID,
			"adventure_id": rec.AdventureID,
			"title":        "Saved Adventure",
			"description":  "A saved adventure from your discovery session",
			"saved_at":     rec.SavedAt,
		})
	}

	util.Success(c, util.Response{"memories": memories})
}

// ExportMemories downloads the caller's memories as an XLSX sheet.
func (h *AdventureHandler) ExportMemories(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	recs, err := h.Saved.ListForUser(claims.UserID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to get memories: %v", err))
		return
	}

	f := excelize.NewFile()
	sheetName := "Memories"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to export memories: %v", err))
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"Adventure ID", "Saved At"}
	for i, hd := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, hd)
	}

	for idx, rec := range recs {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rec.AdventureID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.SavedAt.Format(time.RFC3339))
	}

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "B", 22)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"memories_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to export memories: %v", err))
	}
}
