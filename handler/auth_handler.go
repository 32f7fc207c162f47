package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/memobox-be/types"
	"github.com/tieubaoca/memobox-be/utils"
)

// The server emulates the cloud service's auth/organization API so clients
// built against it can run offline. There is a single static user and
// organization; none of these endpoints touch persistent state.

const (
	localUserID    = "local-user"
	localUserName  = "Local User"
	localUserEmail = "local@localhost"
	localOrgID     = "local-org"
	localOrgName   = "Local Workspace"
	localOrgSlug   = "local"
	localProjectID = "default-project"
)

type AuthHandler interface {
	HandleGetSession(c *gin.Context)
	HandleSignIn(c *gin.Context)
	HandleSignOut(c *gin.Context)
	HandleListOrganizations(c *gin.Context)
	HandleGetOrganization(c *gin.Context)
	HandleListProjects(c *gin.Context)
	HandleListConnections(c *gin.Context)
	HandleGetSettings(c *gin.Context)
	HandleWaitlistStatus(c *gin.Context)
}

type authHandler struct{}

func NewAuthHandler() AuthHandler {
	return &authHandler{}
}

func localUser() types.SessionUser {
	return types.SessionUser{
		ID:        localUserID,
		Name:      localUserName,
		Email:     localUserEmail,
		CreatedAt: "2024-01-01T00:00:00.000Z",
	}
}

func localOrganization() types.Organization {
	return types.Organization{
		ID:        localOrgID,
		Name:      localOrgName,
		Slug:      localOrgSlug,
		CreatedAt: "2024-01-01T00:00:00.000Z",
	}
}

func (h *authHandler) HandleGetSession(c *gin.Context) {
	token, err := utils.GenerateSessionToken(localUserID, localUserEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.SessionResponse{
		Session: types.Session{
			Token:                token,
			UserID:               localUserID,
			ActiveOrganizationID: localOrgID,
			ExpiresAt:            time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		},
		User: localUser(),
	})
}

// HandleSignIn accepts any credentials and answers with the static local
// user plus a freshly minted token.
func (h *authHandler) HandleSignIn(c *gin.Context) {
	var req types.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}
	token, err := utils.GenerateSessionToken(localUserID, localUserEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.SignInResponse{
		Token: token,
		User:  localUser(),
	})
}

func (h *authHandler) HandleSignOut(c *gin.Context) {
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

func (h *authHandler) HandleListOrganizations(c *gin.Context) {
	c.JSON(http.StatusOK, types.OrganizationsResponse{
		Organizations: []types.Organization{localOrganization()},
	})
}

func (h *authHandler) HandleGetOrganization(c *gin.Context) {
	c.JSON(http.StatusOK, localOrganization())
}

func (h *authHandler) HandleListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, types.ProjectsResponse{
		Projects: []types.Project{
			{
				ID:           localProjectID,
				Name:         "Default Project",
				ContainerTag: "sm_project_default",
			},
		},
	})
}

func (h *authHandler) HandleListConnections(c *gin.Context) {
	c.JSON(http.StatusOK, types.ConnectionsResponse{
		Connections: []interface{}{},
	})
}

func (h *authHandler) HandleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"shouldLLMFilter":  false,
		"filterPrompt":     "",
		"includeItems":     nil,
		"excludeItems":     nil,
		"googleDriveCustomKeyEnabled": false,
	})
}

func (h *authHandler) HandleWaitlistStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "approved",
		"position": 0,
	})
}
