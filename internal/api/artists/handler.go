package artists

import (
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// ArtistView is the public projection of an artist profile: no email, no
// credential.
type ArtistView struct {
	ID            uint                        `json:"id"`
	Name          string                      `json:"name"`
	Avatar        string                      `json:"avatar"`
	Role          string                      `json:"role"`
	Banner        string                      `json:"banner,omitempty"`
	Specialty     string                      `json:"specialty,omitempty"`
	Location      string                      `json:"location,omitempty"`
	Followers     int                         `json:"followers"`
	ArtworksCount int                         `json:"artworksCount"`
	TotalLikes    int                         `json:"totalLikes"`
	Bio           string                      `json:"bio,omitempty"`
	Skills        datatypes.JSONSlice[string] `json:"skills"`
	Joined        string                      `json:"joined,omitempty"`
	Social        users.Social                `json:"social"`
}

func toArtistView(u *users.User) ArtistView {
	return ArtistView{
		ID:            u.ID,
		Name:          u.Name,
		Avatar:        u.Avatar,
		Role:          u.Role,
		Banner:        u.Banner,
		Specialty:     u.Specialty,
		Location:      u.Location,
		Followers:     u.Followers,
		ArtworksCount: u.ArtworksCount,
		TotalLikes:    u.TotalLikes,
		Bio:           u.Bio,
		Skills:        u.Skills,
		Joined:        u.Joined,
		Social:        u.Social,
	}
}

// GET /api/artists
func ListArtists(c *gin.Context) {
	list, err := repo.NewUsers(database.DB).ListArtists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	views := make([]ArtistView, 0, len(list))
	for i := range list {
		views = append(views, toArtistView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/artists/:id
func GetArtist(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	artist, err := repo.NewUsers(database.DB).FindArtistByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	c.JSON(http.StatusOK, toArtistView(artist))
}
