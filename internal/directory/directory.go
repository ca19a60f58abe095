// Package directory finds other learners by name or handle and resolves
// friend lists into profiles.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/starquest/internal/profile"
)

// Source lists the profiles known to this installation.
type Source interface {
	List(ctx context.Context) ([]profile.UserProfile, error)
}

// Search returns profiles whose display name or handle contains query,
// case-insensitively. A blank query returns nothing. selfID is excluded.
func Search(ctx context.Context, src Source, query, selfID string) ([]profile.UserProfile, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	all, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	var out []profile.UserProfile
	for _, p := range all {
		if p.ID == selfID {
			continue
		}
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Matches reports whether p's display name or handle contains the
// lower-cased query.
func Matches(p profile.UserProfile, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(p.DisplayName()), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Handle), lowerQuery)
}

// Friends returns the profiles in p's friend list, in friend-list order.
func Friends(all []profile.UserProfile, p profile.UserProfile) []profile.UserProfile {
	return resolve(all, p.FriendIDs)
}

// IncomingRequests returns the profiles that asked p to be friends.
func IncomingRequests(all []profile.UserProfile, p profile.UserProfile) []profile.UserProfile {
	return resolve(all, p.IncomingFriendRequests)
}

// OutgoingRequests returns the profiles p has asked to be friends.
func OutgoingRequests(all []profile.UserProfile, p profile.UserProfile) []profile.UserProfile {
	return resolve(all, p.PendingOutgoingRequests)
}

// resolve maps ids to profiles, dropping ids with no matching profile.
func resolve(all []profile.UserProfile, ids profile.IDSet) []profile.UserProfile {
	byID := make(map[string]profile.UserProfile, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	var out []profile.UserProfile
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
