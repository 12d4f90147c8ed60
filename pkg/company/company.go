package company

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"PortfolioGolang/internal/entity"
)

const (
	defaultProfileURL = "http://imancharlie.pythonanywhere.com/get_company_data"
	cacheDuration     = 3600 * time.Second
	fetchTimeout      = 5 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ICompany serves the company profile used for response templating.
// GetProfile never fails: a fetch error falls back to stale cache, then to
// the built-in profile.
type ICompany interface {
	GetProfile(ctx context.Context) *entity.CompanyProfile
	Invalidate()
}

type client struct {
	url  string
	http *http.Client
	ttl  time.Duration

	mu        sync.Mutex
	cached    *entity.CompanyProfile
	fetchedAt time.Time
}

func New() ICompany {
	url := os.Getenv("COMPANY_PROFILE_URL")
	if url == "" {
		url = defaultProfileURL
	}

	logrus.Info(fmt.Sprintf("Company profile source: %s", url))

	return &client{
		url:  url,
		http: &http.Client{Timeout: fetchTimeout},
		ttl:  cacheDuration,
	}
}

// NewWithOptions builds a client with explicit settings, bypassing env.
func NewWithOptions(url string, httpClient *http.Client, ttl time.Duration) ICompany {
	return &client{url: url, http: httpClient, ttl: ttl}
}

func (c *client) GetProfile(ctx context.Context) *entity.CompanyProfile {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.cached
	}

	profile, err := c.fetch(ctx)
	if err == nil {
		c.cached = profile
		c.fetchedAt = time.Now()
		logrus.Info("Successfully fetched fresh company profile")
		return profile
	}

	logrus.Warn(fmt.Sprintf("Failed to fetch company profile: %v", err))

	// Expired cache beats the built-in fallback.
	if c.cached != nil {
		logrus.Info("Using expired cached company profile")
		return c.cached
	}

	fallback := fallbackProfile()
	c.cached = fallback
	c.fetchedAt = time.Now()
	logrus.Info("Using fallback company profile")
	return fallback
}

// Invalidate drops the cache so the next GetProfile refetches.
func (c *client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.fetchedAt = time.Time{}
}

func (c *client) fetch(ctx context.Context) (*entity.CompanyProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("company profile endpoint returned %d", res.StatusCode)
	}

	var profile entity.CompanyProfile
	if err := json.NewDecoder(res.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func fallbackProfile() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		Name:     "Kodin Softwares",
		Industry: "software industry",
		Mission:  "To provide websites and mobile applications that use advanced AI technology to tackle and provide solutions to improve businesses, institutions, organizations and individuals",
		Products: []string{
			"AI Chatbots", "Natural Language Processing", "Machine Learning Models",
			"Web Applications", "Mobile Applications",
		},
		Services: []string{
			"Custom AI Development", "AI Consulting", "Data Analytics",
			"Software Development", "Web Design", "Mobile App Development",
		},
		ContactInfo: "kodinsoftwares@gmail.com",
		Phone:       "+254 700 000000",
		Address:     "Nairobi, Kenya",
		Website:     "http://kodinsoftwares.pythonanywhere.com",
		About:       "At our core, we believe that #AnyoneCanCode and that nothing is impossible in software development. We are more than just a software company—we are a passionate collective driven by innovation and faith, serving a higher purpose of Almighty God through every line of code we create. Join us on this journey where technology meets divine inspiration, transforming challenges into groundbreaking opportunities.",
	}
}
