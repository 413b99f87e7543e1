package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/gobodhi/tour-cms/internal/middleware"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
	"gorm.io/gorm"
)

// AuthHandler handles the GitHub OAuth handoff and session routes
type AuthHandler struct {
	DB    *gorm.DB
	Cfg   *config.Config
	OAuth *oauth2.Config
}

// NewAuthHandler wires the GitHub OAuth configuration.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		DB:  db,
		Cfg: cfg,
		OAuth: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.GitHubCallbackURL,
			Scopes:       []string{"user:email"},
			Endpoint:     githuboauth.Endpoint,
		},
	}
}

// GitHubLogin handles GET /api/auth/github
// @Summary Start the GitHub OAuth flow
// @Tags Auth
// @Success 302
// @Router /auth/github [get]
func (h *AuthHandler) GitHubLogin(c *fiber.Ctx) error {
	state, err := services.NewStateToken(h.Cfg.SessionSecret)
	if err != nil {
		return err
	}
	return c.Redirect(h.OAuth.AuthCodeURL(state), fiber.StatusFound)
}

// GitHubCallback handles GET /api/auth/github/callback
// @Summary Complete the GitHub OAuth flow
// @Description Exchanges the code, enforces the allowedUsers setting, and sets the session cookie
// @Tags Auth
// @Success 302
// @Router /auth/github/callback [get]
func (h *AuthHandler) GitHubCallback(c *fiber.Ctx) error {
	loginFailure := fmt.Sprintf("%s/login?error=unauthorized", h.Cfg.ClientURL)

	if c.Query("error") != "" {
		return c.Redirect(loginFailure, fiber.StatusFound)
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return c.Redirect(loginFailure, fiber.StatusFound)
	}
	if err := services.ValidateStateToken(h.Cfg.SessionSecret, state); err != nil {
		return c.Redirect(loginFailure, fiber.StatusFound)
	}

	token, err := h.OAuth.Exchange(c.Context(), code)
	if err != nil {
		return c.Redirect(loginFailure, fiber.StatusFound)
	}

	gh := github.NewClient(h.OAuth.Client(c.Context(), token))
	profile, _, err := gh.Users.Get(c.Context(), "")
	if err != nil {
		return c.Redirect(loginFailure, fiber.StatusFound)
	}

	allowed, err := services.IsAllowedUser(h.DB, profile.GetLogin())
	if err != nil {
		return err
	}
	if !allowed {
		return c.Redirect(loginFailure, fiber.StatusFound)
	}

	user, err := services.EnsureUser(h.DB, profile.GetID(), profile.GetLogin(), profile.GetAvatarURL())
	if err != nil {
		return err
	}

	session, err := services.NewSessionToken(h.Cfg.SessionSecret, user.ID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookie,
		Value:    session,
		Expires:  time.Now().Add(services.SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(h.Cfg.ClientURL, fiber.StatusFound)
}

// Me handles GET /api/auth/me
// @Summary Get the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// Logout handles POST /api/auth/logout
// @Summary End the session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}
