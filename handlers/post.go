package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"volunteerhub/models"
	"volunteerhub/store"
)

// upcomingLimit caps the upcoming-deadlines listing.
const upcomingLimit = 6

type OrganizerPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

// PostPayload is the body of both add-post and update-post. Unknown
// fields are dropped rather than stored verbatim.
type PostPayload struct {
	Thumbnail        string           `json:"thumbnail"`
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Location         string           `json:"location"`
	VolunteersNeeded int              `json:"volunteersNeeded"`
	Deadline         string           `json:"deadline" binding:"required"`
	Organizer        OrganizerPayload `json:"organizer" binding:"required"`
}

func (p PostPayload) toModel() models.Post {
	return models.Post{
		Thumbnail:        p.Thumbnail,
		Title:            p.Title,
		Description:      p.Description,
		Category:         p.Category,
		Location:         p.Location,
		VolunteersNeeded: p.VolunteersNeeded,
		Deadline:         p.Deadline,
		Organizer: models.Organizer{
			Name:  p.Organizer.Name,
			Email: p.Organizer.Email,
			Photo: p.Organizer.Photo,
		},
	}
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req PostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	post := req.toModel()
	id, err := h.store.InsertPost(ctx, &post)
	if err != nil {
		log.Printf("CreatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// ListPosts searches titles case-insensitively and pages the results.
// skip is page*size; neither value is bounds-checked.
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	size, _ := strconv.ParseInt(c.DefaultQuery("size", "10"), 10, 64)

	ctx, cancel := opCtx()
	defer cancel()

	posts, err := h.store.ListPosts(ctx, store.ListOpts{
		Search: c.Query("search"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) TotalPosts(c *gin.Context) {
	ctx, cancel := opCtx()
	defer cancel()

	posts, err := h.store.AllPosts(ctx)
	if err != nil {
		log.Printf("TotalPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpcomingPosts returns the posts with the nearest deadlines, soonest
// first.
func (h *Handler) UpcomingPosts(c *gin.Context) {
	ctx, cancel := opCtx()
	defer cancel()

	posts, err := h.store.UpcomingPosts(ctx, upcomingLimit)
	if err != nil {
		log.Printf("UpcomingPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	post, err := h.store.GetPost(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("GetPost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// MyPosts lists posts organized by the email in the path. The path
// email must match the token's email.
func (h *Handler) MyPosts(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	posts, err := h.store.PostsByOrganizer(ctx, email)
	if err != nil {
		log.Printf("MyPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost applies a field-level update, creating the post with the
// given id when none exists.
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req PostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	post := req.toModel()
	result, err := h.store.UpsertPost(ctx, id, &post)
	if err != nil {
		log.Printf("UpdatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeletePost removes one post. Requests referencing it are left in
// place; there is no cascade.
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	deleted, err := h.store.DeletePost(ctx, id)
	if err != nil {
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
