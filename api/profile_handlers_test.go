package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/models"
)

func TestProfileHandlers(t *testing.T) {
	match := models.Profile{
		ID: "a1b2c3",
		Name: models.ProfileName{
			First: "Sofia",
			Last:  "Andersen",
		},
		Picture: models.ProfilePicture{
			Large: "https://randomuser.me/api/portraits/women/21.jpg",
		},
		Location: models.ProfileLocation{
			City:    "Copenhagen",
			Country: "Denmark",
		},
		Age:              29,
		Gender:           "female",
		DNACompatibility: 91,
	}

	runAPITests(t, apiTests{
		{
			name:   "Get matches",
			path:   "/v1/gm/matches?page=1&limit=10",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.getMatchesFunc = func(page, limit int) []models.Profile {
					if page != 1 {
						t.Errorf("Expected page 1, got %d", page)
					}
					if limit != 10 {
						t.Errorf("Expected limit 10, got %d", limit)
					}
					return []models.Profile{match}
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON([]models.Profile{match})
			},
		},
		{
			name:   "Get match by ID",
			path:   "/v1/gm/match/a1b2c3",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.getMatchByIDFunc = func(id string) (*models.Profile, error) {
					if id != "a1b2c3" {
						t.Errorf("Expected match ID a1b2c3, got %s", id)
					}
					return &match, nil
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(&match)
			},
		},
		{
			name:   "Get match not found",
			path:   "/v1/gm/match/nobody",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.getMatchByIDFunc = func(id string) (*models.Profile, error) {
					return nil, fmt.Errorf("%w: error", coreiface.ErrNotFound)
				}
			},
			statusCode: http.StatusNotFound,
			expectedResponse: func() ([]byte, error) {
				return []byte(fmt.Sprintf("%s\n", `{"error": "not found: error"}`)), nil
			},
		},
		{
			name:   "Get my profile",
			path:   "/v1/gm/profile",
			method: http.MethodGet,
			setNodeMethods: func(n *mockNode) {
				n.getMyProfileFunc = func() *models.Profile {
					return &match
				}
			},
			statusCode: http.StatusOK,
			expectedResponse: func() ([]byte, error) {
				return marshalAndSanitizeJSON(&match)
			},
		},
	})
}
