package proxy

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/AkhilKonduru1/Eventure/internal/util"

	"github.com/gin-gonic/gin"
)

// Handler serves the one-route proxy surface.
type Handler struct {
	Client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

type generateAdventureReq struct {
	Prompt string `json:"prompt"`
}

// GenerateAdventure forwards the prompt upstream. A 200 passes the upstream
// body through verbatim; any other upstream status is passed through with
// its details; a deadline miss becomes 408.
func (h *Handler) GenerateAdventure(c *gin.Context) {
	var req generateAdventureReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		util.Error(c, http.StatusBadRequest, "No prompt provided")
		return
	}

	res, err := h.Client.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			util.Error(c, http.StatusRequestTimeout, "Request timeout")
			return
		}
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Request failed: %v", err))
		return
	}

	if res.StatusCode == http.StatusOK {
		c.Data(http.StatusOK, "application/json", res.Body)
		return
	}

	log.Printf("upstream error: %d - %s", res.StatusCode, res.Body)
	c.JSON(res.StatusCode, gin.H{
		"error":   fmt.Sprintf("API request failed: %d", res.StatusCode),
		"details": string(res.Body),
	})
}

// Health reports proxy liveness.
func (h *Handler) Health(c *gin.Context) {
	util.Success(c, util.Response{
		"status":  "healthy",
		"message": "Eventure proxy is running",
	})
}
