package core

import (
	"errors"
	"fmt"

	"github.com/genemuffin/genemuffind/core/coreiface"
	"github.com/genemuffin/genemuffind/models"
	"github.com/genemuffin/genemuffind/profiles"
)

// GetMatches returns a page of match profiles. The profiles come from
// the remote API when it is reachable and from the cache or canned
// data otherwise.
func (n *GeneMuffinNode) GetMatches(page, limit int) []models.Profile {
	return n.profiles.GetMatches(page, limit)
}

// GetMatchByID returns the match profile with the given ID.
func (n *GeneMuffinNode) GetMatchByID(id string) (*models.Profile, error) {
	profile, err := n.profiles.GetMatchByID(id)
	if errors.Is(err, profiles.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", coreiface.ErrNotFound, err)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %s", coreiface.ErrInternalServer, err)
	}
	return profile, nil
}

// GetMyProfile returns the profile of the local user.
func (n *GeneMuffinNode) GetMyProfile() *models.Profile {
	return n.profiles.GetMyProfile()
}
