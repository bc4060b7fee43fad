package exhibitions

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/gallery"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type CreateExhibitionRequest struct {
	Title            string   `json:"title" binding:"required"`
	Location         string   `json:"location" binding:"required"`
	Date             string   `json:"date" binding:"required"`
	EndDate          string   `json:"endDate" binding:"required"`
	Description      string   `json:"description"`
	Type             string   `json:"type" binding:"omitempty,oneof=upcoming past"`
	RegistrationOpen *bool    `json:"registrationOpen"`
	Featured         bool     `json:"featured"`
	Image            string   `json:"image" binding:"required"`
	Artworks         []string `json:"artworks"`
}

// GET /api/exhibitions
func ListExhibitions(c *gin.Context) {
	list, err := repo.NewExhibitions(database.DB).ListNewestFirst()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibitions"})
		return
	}
	if list == nil {
		list = []gallery.Exhibition{}
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/exhibitions
func CreateExhibition(c *gin.Context) {
	var req CreateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	exType := req.Type
	if exType == "" {
		exType = gallery.ExhibitionUpcoming
	}
	registrationOpen := true
	if req.RegistrationOpen != nil {
		registrationOpen = *req.RegistrationOpen
	}
	artworkIDs := req.Artworks
	if artworkIDs == nil {
		artworkIDs = []string{}
	}

	exhibition := gallery.Exhibition{
		Title:            req.Title,
		Location:         req.Location,
		Date:             req.Date,
		EndDate:          req.EndDate,
		Description:      req.Description,
		Type:             exType,
		Image:            req.Image,
		RegistrationOpen: registrationOpen,
		Featured:         req.Featured,
		Artworks:         datatypes.NewJSONSlice(artworkIDs),
		ArtistID:         userID,
	}

	if err := repo.NewExhibitions(database.DB).Create(&exhibition); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition"})
		return
	}

	c.JSON(http.StatusCreated, exhibition)
}
