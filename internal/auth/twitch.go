package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/twitch"

	"streamdesk-backend/internal/fixtures"
	"streamdesk-backend/internal/shared/fault"
	"streamdesk-backend/internal/shared/server/respond"
)

var (
	ErrNotConfigured = fault.NewUnavailable("auth_not_configured", "Twitch auth not configured")
	ErrMissingCode   = fault.NewInvalid("invalid_request", "Missing authorization code")
)

// TwitchService is a stand-in for the Twitch OAuth flow. It builds a real
// authorize URL but never exchanges the code or issues a session.
type TwitchService struct {
	oauthConfig *oauth2.Config
	user        func() fixtures.User
	newState    func() string
}

// NewTwitchService builds a TwitchService.
func NewTwitchService(clientID, clientSecret, redirectURL string, user func() fixtures.User) *TwitchService {
	return &TwitchService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"user:read:email"},
			Endpoint:     twitch.Endpoint,
		},
		user:     user,
		newState: uuid.NewString,
	}
}

// RegisterRoutes attaches Twitch auth routes.
func (s *TwitchService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/twitch/start", s.start)
	rg.GET("/auth/twitch/callback", s.callback)
	rg.POST("/auth/logout", s.logout)
}

func (s *TwitchService) start(c *gin.Context) {
	if s.oauthConfig.ClientID == "" || s.oauthConfig.RedirectURL == "" {
		respond.Fail(c, ErrNotConfigured)
		return
	}
	c.Redirect(http.StatusFound, s.oauthConfig.AuthCodeURL(s.newState()))
}

type callbackResponse struct {
	User fixtures.User `json:"user"`
}

func (s *TwitchService) callback(c *gin.Context) {
	if c.Query("code") == "" {
		respond.Fail(c, ErrMissingCode)
		return
	}
	respond.OK(c, callbackResponse{User: s.user()})
}

func (s *TwitchService) logout(c *gin.Context) {
	respond.JSON(c, http.StatusOK, respond.Envelope{Success: true})
}
