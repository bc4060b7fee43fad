package artworks

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/gallery"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
)

// GET /api/artworks/:id/comments
func ListComments(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := repo.NewArtworks(database.DB).FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
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
	c.JSON(http.StatusOK, mapped)
}

// POST /api/artworks/:id/comments
func CreateComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if _, err := repo.NewArtworks(database.DB).FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	me, err := repo.NewUsers(database.DB).FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	comment := gallery.Comment{
		ArtworkID: id,
		UserID:    me.ID,
		// Snapshots of the commenter at creation time.
		UserName:   me.Name,
		UserAvatar: me.Avatar,
		Text:       req.Text,
	}

	if err := repo.NewComments(database.DB).Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, toCommentDTO(comment))
}

// DELETE /api/artworks/:id/comments/:commentId
//
// Allowed for the comment's author or the artwork's owning artist; both
// predicates are checked here rather than in middleware, since ownership is
// a per-resource fact.
func DeleteComment(c *gin.Context) {
	artworkID, ok := paramID(c, "id")
	if !ok {
		return
	}
	commentID, ok := paramID(c, "commentId")
	if !ok {
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	comment, err := repo.NewComments(database.DB).FindByID(commentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	artwork, err := repo.NewArtworks(database.DB).FindByID(artworkID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	isAuthor := comment.UserID == userID
	isArtist := artwork.ArtistID == userID
	if !isAuthor && !isArtist {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := repo.NewComments(database.DB).Delete(comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
