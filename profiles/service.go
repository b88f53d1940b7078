package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/genemuffin/genemuffind/database"
	"github.com/genemuffin/genemuffind/models"
	"github.com/genemuffin/genemuffind/models/factory"
	"github.com/jinzhu/gorm"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("PROF")

const (
	// defaultAPIURL is the public placeholder API serving demo profiles.
	defaultAPIURL = "https://randomuser.me/api"

	// cacheExpiry is how long a fetched page stays fresh.
	cacheExpiry = time.Hour * 24 * 30

	// defaultRequestBudget is the number of remote requests allowed per
	// rate window.
	defaultRequestBudget = 30

	// rateWindow is the rate limit accounting window.
	rateWindow = time.Minute

	// defaultRetryDelay is the fixed delay before the single retry of a
	// failed fetch.
	defaultRetryDelay = time.Second * 2

	// seed keeps the remote API returning a stable population.
	seed = "genemuffin"
)

// ErrNotFound is returned when a profile id is unknown.
var ErrNotFound = errors.New("profile not found")

var defaultInterests = []string{"Genetics", "Science", "Technology"}

const defaultBio = "Passionate about genetic research and innovation."

// Service fetches match and profile records from the placeholder API.
// Responses are cached in the database for thirty days, remote requests
// are limited to a fixed budget per minute, and a failed fetch falls
// back to a hardcoded default record so callers always get demo
// content to render.
type Service struct {
	mtx         sync.Mutex
	client      *http.Client
	apiURL      string
	db          database.Database
	budget      int
	requests    int
	windowStart time.Time
	retryDelay  time.Duration
}

// Option customizes the service construction.
type Option func(*Service)

// APIURL overrides the remote API base URL.
func APIURL(url string) Option {
	return func(s *Service) {
		s.apiURL = url
	}
}

// RetryDelay overrides the fixed retry delay. Useful in tests.
func RetryDelay(d time.Duration) Option {
	return func(s *Service) {
		s.retryDelay = d
	}
}

// RequestBudget overrides the number of remote requests allowed per minute.
func RequestBudget(n int) Option {
	return func(s *Service) {
		s.budget = n
	}
}

// NewService returns a new profile service. The db may be nil, in which
// case responses are not cached.
func NewService(db database.Database, opts ...Option) *Service {
	s := &Service{
		client:      &http.Client{Timeout: time.Minute},
		apiURL:      defaultAPIURL,
		db:          db,
		budget:      defaultRequestBudget,
		windowStart: time.Now(),
		retryDelay:  defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetMatches returns a page of match profiles. It never fails; if the
// remote API is unreachable or the rate budget is exhausted the cached
// page or the hardcoded fallback is returned.
func (s *Service) GetMatches(page, limit int) []models.Profile {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	key := fmt.Sprintf("matches-%d-%d", page, limit)

	if cached, ok := s.readCache(key); ok {
		return cached
	}

	profiles, err := s.fetch(fmt.Sprintf("%s/?results=%d&page=%d&seed=%s", s.apiURL, limit, page, seed))
	if err != nil {
		log.Warningf("Error fetching matches: %s. Serving fallback profile.", err)
		return []models.Profile{*fallbackProfile()}
	}

	s.writeCache(key, profiles)
	return profiles
}

// GetMatchByID returns the profile with the given id from any cached
// page, or ErrNotFound.
func (s *Service) GetMatchByID(id string) (*models.Profile, error) {
	if s.db != nil {
		var records []models.CachedProfilesRecord
		err := s.db.View(func(tx database.Tx) error {
			return tx.Read().Find(&records).Error
		})
		if err != nil && !gorm.IsRecordNotFoundError(err) {
			return nil, err
		}
		for _, record := range records {
			var profiles []models.Profile
			if err := json.Unmarshal(record.Serialized, &profiles); err != nil {
				continue
			}
			for i, profile := range profiles {
				if profile.ID == id {
					return &profiles[i], nil
				}
			}
		}
	}
	if fallback := fallbackProfile(); fallback.ID == id {
		return fallback, nil
	}
	return nil, ErrNotFound
}

// GetMyProfile returns the current user's profile. Like GetMatches it
// never fails; the fallback record is served when the remote API is
// unavailable.
func (s *Service) GetMyProfile() *models.Profile {
	const key = "me"

	if cached, ok := s.readCache(key); ok && len(cached) > 0 {
		return &cached[0]
	}

	profiles, err := s.fetch(fmt.Sprintf("%s/?results=1&seed=%s-me", s.apiURL, seed))
	if err != nil {
		log.Warningf("Error fetching profile: %s. Serving fallback profile.", err)
		return fallbackProfile()
	}
	if len(profiles) == 0 {
		log.Warning("Profile fetch returned no results. Serving fallback profile.")
		return fallbackProfile()
	}

	s.writeCache(key, profiles)
	return &profiles[0]
}

// fetch performs the remote request with a rate limit check and a
// single fixed-delay retry.
func (s *Service) fetch(url string) ([]models.Profile, error) {
	if !s.takeRequest() {
		return nil, errors.New("rate limit exceeded")
	}

	profiles, err := s.doFetch(url)
	if err == nil {
		return profiles, nil
	}

	time.Sleep(s.retryDelay)
	if !s.takeRequest() {
		return nil, errors.New("rate limit exceeded")
	}
	return s.doFetch(url)
}

func (s *Service) doFetch(url string) ([]models.Profile, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}

	var apiResponse struct {
		Results []randomUser `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(apiResponse.Results))
	for _, user := range apiResponse.Results {
		profiles = append(profiles, user.toProfile())
	}
	return profiles, nil
}

// takeRequest consumes one request from the rate budget, returning
// false if the budget for the current window is exhausted.
func (s *Service) takeRequest() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if time.Since(s.windowStart) > rateWindow {
		s.windowStart = time.Now()
		s.requests = 0
	}
	if s.requests >= s.budget {
		return false
	}
	s.requests++
	return true
}

func (s *Service) readCache(key string) ([]models.Profile, bool) {
	if s.db == nil {
		return nil, false
	}
	var record models.CachedProfilesRecord
	err := s.db.View(func(tx database.Tx) error {
		return tx.Read().Where("key = ?", key).First(&record).Error
	})
	if err != nil {
		return nil, false
	}
	if time.Since(record.Timestamp) > cacheExpiry {
		return nil, false
	}
	var profiles []models.Profile
	if err := json.Unmarshal(record.Serialized, &profiles); err != nil {
		return nil, false
	}
	return profiles, true
}

func (s *Service) writeCache(key string, profiles []models.Profile) {
	if s.db == nil {
		return
	}
	serialized, err := json.Marshal(profiles)
	if err != nil {
		log.Errorf("Error serializing profile cache: %s", err)
		return
	}
	err = s.db.Update(func(tx database.Tx) error {
		return tx.Save(&models.CachedProfilesRecord{
			Key:        key,
			Serialized: serialized,
			Timestamp:  time.Now(),
		})
	})
	if err != nil {
		log.Errorf("Error saving profile cache: %s", err)
	}
}

// randomUser is the wire shape of a randomuser API record.
type randomUser struct {
	Login struct {
		UUID string `json:"uuid"`
	} `json:"login"`
	Name    models.ProfileName `json:"name"`
	Picture struct {
		Large     string `json:"large"`
		Medium    string `json:"medium"`
		Thumbnail string `json:"thumbnail"`
	} `json:"picture"`
	Location struct {
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
		Street  struct {
			Number int    `json:"number"`
			Name   string `json:"name"`
		} `json:"street"`
	} `json:"location"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	Nat    string `json:"nat"`
	Dob    struct {
		Date string `json:"date"`
		Age  int    `json:"age"`
	} `json:"dob"`
}

// toProfile converts the wire record into a Profile, filling in the
// mock fields the clients render. The compatibility score is random in
// the 85 to 99 range.
func (u randomUser) toProfile() models.Profile {
	return models.Profile{
		ID:   u.Login.UUID,
		Name: u.Name,
		Picture: models.ProfilePicture{
			Large:     u.Picture.Large,
			Medium:    u.Picture.Medium,
			Thumbnail: u.Picture.Thumbnail,
		},
		Location: models.ProfileLocation{
			City:    u.Location.City,
			State:   u.Location.State,
			Country: u.Location.Country,
			Street: models.ProfileStreet{
				Number: u.Location.Street.Number,
				Name:   u.Location.Street.Name,
			},
		},
		Email:            u.Email,
		Age:              u.Dob.Age,
		Gender:           u.Gender,
		Nat:              u.Nat,
		Dob:              models.ProfileDob{Date: u.Dob.Date, Age: u.Dob.Age},
		DNACompatibility: 85 + rand.Intn(15),
		Interests:        defaultInterests,
		Bio:              defaultBio,
	}
}

// fallbackProfile is the hardcoded record served when the remote API
// cannot be reached. Matches the default record the client apps ship.
func fallbackProfile() *models.Profile {
	return factory.NewProfile("1")
}
