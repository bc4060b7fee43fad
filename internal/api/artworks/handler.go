package artworks

import (
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/gallery"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/artworks
func ListArtworks(c *gin.Context) {
	list, err := repo.NewArtworks(database.DB).ListNewestFirst()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}
	if list == nil {
		list = []gallery.Artwork{}
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/artworks
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	me, err := repo.NewUsers(database.DB).FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	artwork := gallery.Artwork{
		Title:       req.Title,
		Category:    req.Category,
		Medium:      req.Medium,
		Size:        req.Size,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		// Display name snapshot; later profile renames do not touch it.
		Artist:   me.Name,
		ArtistID: me.ID,
	}

	if err := repo.NewArtworks(database.DB).Create(&artwork); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// GET /api/artworks/:id
func GetArtwork(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	artwork, err := repo.NewArtworks(database.DB).FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	comments, err := repo.NewComments(database.DB).ListForArtwork(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}

	mapped := make([]CommentDTO, 0, len(comments))
	for _, cm := range comments {
		mapped = append(mapped, toCommentDTO(cm))
	}

	c.JSON(http.StatusOK, ArtworkDetail{Artwork: *artwork, Comments: mapped})
}

// PUT /api/artworks/:id
func UpdateArtwork(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	updated, err := repo.NewArtworks(database.DB).UpdateOwned(id, userID, req.patch())
	if err != nil {
		if err == repo.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DELETE /api/artworks/:id
func DeleteArtwork(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	deleted, err := repo.NewArtworks(database.DB).DeleteOwned(id, userID)
	if err != nil {
		if err == repo.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, deleted)
}
