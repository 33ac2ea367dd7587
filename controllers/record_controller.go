package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nutrifind/models"
	"nutrifind/services"
)

// RecordStore is the persistence surface handlers need. RecordService
// satisfies it.
type RecordStore interface {
	Save(ctx context.Context, userID uint, food models.FoodItem) (*models.SavedRecord, error)
	List(ctx context.Context, userID uint) ([]models.SavedRecord, error)
	Delete(ctx context.Context, userID, recordID uint) error
}

type RecordController struct {
	Records RecordStore
	Hub     *services.RealtimeHub
}

func NewRecordController(records RecordStore, hub *services.RealtimeHub) *RecordController {
	return &RecordController{Records: records, Hub: hub}
}

type SaveRecordInput struct {
	FdcID       int64  `json:"fdcId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// POST /records
// Save outcomes are exactly three: saved, already exists, failed. Conflicts
// are recognized by error kind, never by transport status codes.
func (rc *RecordController) SaveRecord(c *gin.Context) {
	var input SaveRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	food := models.FoodItem{FdcID: input.FdcID, Description: input.Description}

	rec, err := rc.Records.Save(c.Request.Context(), userID, food)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			rc.notify(userID, "exists", input.FdcID, input.Description)
			c.JSON(http.StatusConflict, gin.H{"status": "exists", "fdc_id": input.FdcID})
			return
		}
		rc.notify(userID, "failed", input.FdcID, input.Description)
		c.JSON(http.StatusBadGateway, gin.H{"status": "failed", "error": err.Error()})
		return
	}

	rc.notify(userID, "saved", input.FdcID, input.Description)
	c.JSON(http.StatusCreated, gin.H{"status": "saved", "record": rec})
}

// GET /records
func (rc *RecordController) ListRecords(c *gin.Context) {
	records, err := rc.Records.List(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// DELETE /records/:id
func (rc *RecordController) DeleteRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	err = rc.Records.Delete(c.Request.Context(), c.GetUint("userID"), uint(id))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	}
}

func (rc *RecordController) notify(userID uint, status string, fdcID int64, description string) {
	if rc.Hub == nil {
		return
	}
	rc.Hub.Broadcast(userID, gin.H{
		"type":        "save_outcome",
		"status":      status,
		"fdc_id":      fdcID,
		"description": description,
	})
}
