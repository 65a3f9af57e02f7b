package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"volunteerhub/models"
	"volunteerhub/store"
)

type RequestPayload struct {
	PostID        string `json:"postId" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	VolunteerName string `json:"volunteerName"`
	Suggestion    string `json:"suggestion"`
	Status        string `json:"status"`
}

// CreateRequest records an application to a post and bumps the post's
// request_count. Each (email, postId) pair may apply once; the check
// and the insert are separate store calls, so concurrent identical
// submissions can still race past the check.
func (h *Handler) CreateRequest(c *gin.Context) {
	var req RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	_, err = h.store.FindRequest(ctx, req.Email, req.PostID)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already applied for this campaign"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("CreateRequest lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	request := models.Request{
		PostID:        req.PostID,
		Email:         req.Email,
		VolunteerName: req.VolunteerName,
		Suggestion:    req.Suggestion,
		Status:        req.Status,
	}

	id, err := h.store.InsertRequest(ctx, &request)
	if err != nil {
		log.Printf("CreateRequest insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	// Separate from the insert; a crash in between leaves the counter
	// behind by one.
	if _, err := h.store.AdjustRequestCount(ctx, postID, 1); err != nil {
		log.Printf("CreateRequest counter error: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// MyRequests lists applications by the email in the path. The path
// email must match the token's email.
func (h *Handler) MyRequests(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	requests, err := h.store.RequestsByEmail(ctx, email)
	if err != nil {
		log.Printf("MyRequests error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// DeleteRequest removes an application and decrements the parent
// post's request_count. The parent id arrives in the postId query
// param; when it is absent or wrong the decrement matches nothing and
// the deletion still proceeds. The counter has no floor at zero.
func (h *Handler) DeleteRequest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	var postsMatched int64
	if postID, err := primitive.ObjectIDFromHex(c.Query("postId")); err == nil {
		postsMatched, err = h.store.AdjustRequestCount(ctx, postID, -1)
		if err != nil {
			log.Printf("DeleteRequest counter error: %v", err)
		}
	}

	deleted, err := h.store.DeleteRequest(ctx, id)
	if err != nil {
		log.Printf("DeleteRequest error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deletedCount": deleted,
		"postsMatched": postsMatched,
	})
}
