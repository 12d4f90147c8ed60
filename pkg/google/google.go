package google

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type ItfGoogle interface {
	GetUserInfo(c *fiber.Ctx, code string) (*googleoauth.Userinfo, error)
	GetConfig() *oauth2.Config
}

type googleProvider struct {
	config *oauth2.Config
}

func New() ItfGoogle {
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")
	if redirectURL == "" {
		redirectURL = "http://localhost:8080/api/v1/auth/callback-gl"
	}

	oauthConfgl := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  redirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
		Endpoint:     google.Endpoint,
	}

	return &googleProvider{config: oauthConfgl}
}

// GetUserInfo exchanges the OAuth code and fetches the user's profile.
func (g *googleProvider) GetUserInfo(c *fiber.Ctx, code string) (*googleoauth.Userinfo, error) {
	token, err := g.config.Exchange(c.Context(), code)
	if err != nil {
		logrus.WithError(err).Error("Failed to exchange Google OAuth code")
		return nil, err
	}

	svc, err := googleoauth.NewService(c.Context(),
		option.WithTokenSource(g.config.TokenSource(c.Context(), token)))
	if err != nil {
		logrus.WithError(err).Error("Failed to build Google userinfo service")
		return nil, err
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch Google userinfo")
		return nil, err
	}

	return info, nil
}

func (g *googleProvider) GetConfig() *oauth2.Config {
	return g.config
}
