package profile

import (
	"encoding/json"
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// ProfileView is the owner-facing projection: everything except the
// credential.
type ProfileView struct {
	ID            uint                        `json:"id"`
	Name          string                      `json:"name"`
	Email         string                      `json:"email"`
	Role          string                      `json:"role"`
	Avatar        string                      `json:"avatar"`
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

func toProfileView(u *users.User) ProfileView {
	return ProfileView{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Avatar:        u.Avatar,
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

type socialPatch struct {
	Instagram *string `json:"instagram"`
	Website   *string `json:"website"`
	Twitter   *string `json:"twitter"`
}

// UpdateProfileRequest lists exactly the mutable fields. Role and the
// denormalized counters are not here and therefore can never change through
// this endpoint.
type UpdateProfileRequest struct {
	Name      *string      `json:"name"`
	Email     *string      `json:"email"`
	Avatar    *string      `json:"avatar"`
	Banner    *string      `json:"banner"`
	Specialty *string      `json:"specialty"`
	Location  *string      `json:"location"`
	Bio       *string      `json:"bio"`
	Skills    *[]string    `json:"skills"`
	Joined    *string      `json:"joined"`
	Social    *socialPatch `json:"social"`
}

func (r UpdateProfileRequest) patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Email != nil {
		patch["email"] = *r.Email
	}
	if r.Avatar != nil {
		patch["avatar"] = *r.Avatar
	}
	if r.Banner != nil {
		patch["banner"] = *r.Banner
	}
	if r.Specialty != nil {
		patch["specialty"] = *r.Specialty
	}
	if r.Location != nil {
		patch["location"] = *r.Location
	}
	if r.Bio != nil {
		patch["bio"] = *r.Bio
	}
	if r.Skills != nil {
		patch["skills"] = datatypes.NewJSONSlice(*r.Skills)
	}
	if r.Joined != nil {
		patch["joined"] = *r.Joined
	}
	if r.Social != nil {
		if r.Social.Instagram != nil {
			patch["social_instagram"] = *r.Social.Instagram
		}
		if r.Social.Website != nil {
			patch["social_website"] = *r.Social.Website
		}
		if r.Social.Twitter != nil {
			patch["social_twitter"] = *r.Social.Twitter
		}
	}
	return patch
}

// GET /api/profile
func GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	u, err := repo.NewUsers(database.DB).FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, toProfileView(u))
}

// PUT /api/profile
//
// Fields outside the allow-list are rejected outright instead of silently
// dropped.
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := repo.NewUsers(database.DB).Update(userID, req.patch())
	if err != nil {
		if err == repo.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, toProfileView(u))
}
