package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/starquest/internal/profile"
)

type staticSource struct {
	profiles []profile.UserProfile
	err      error
}

func (s staticSource) List(context.Context) ([]profile.UserProfile, error) {
	return s.profiles, s.err
}

func people() []profile.UserProfile {
	return []profile.UserProfile{
		*profile.New("Anna", "Petrova", "anna_p"),
		*profile.New("Boris", "Ivanov", "bigbob"),
		*profile.New("Ivan", "Annenkov", "vanya"),
	}
}

func TestSearch(t *testing.T) {
	ps := people()
	src := staticSource{profiles: ps}
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"display name case-insensitive", "ANN", []string{"@anna_p", "@vanya"}},
		{"handle", "bob", []string{"@bigbob"}},
		{"handle with prefix", "@big", []string{"@bigbob"}},
		{"no match", "zzz", nil},
		{"empty", "", nil},
		{"blank", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Search(ctx, src, tt.query, "")
			require.NoError(t, err)
			var handles []string
			for _, p := range got {
				handles = append(handles, p.Handle)
			}
			assert.Equal(t, tt.want, handles)
		})
	}
}

func TestSearch_ExcludesSelf(t *testing.T) {
	ps := people()
	got, err := Search(context.Background(), staticSource{profiles: ps}, "anna", ps[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_SourceError(t *testing.T) {
	_, err := Search(context.Background(), staticSource{err: errors.New("boom")}, "a", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list profiles")
}

func TestFriendLists(t *testing.T) {
	ps := people()
	me := *profile.New("Me", "", "me")
	me.FriendIDs = profile.IDSet{ps[2].ID, "ghost", ps[0].ID}
	me.IncomingFriendRequests = profile.IDSet{ps[1].ID}
	me.PendingOutgoingRequests = profile.IDSet{"ghost"}

	friends := Friends(ps, me)
	require.Len(t, friends, 2)
	assert.Equal(t, ps[2].ID, friends[0].ID)
	assert.Equal(t, ps[0].ID, friends[1].ID)

	incoming := IncomingRequests(ps, me)
	require.Len(t, incoming, 1)
	assert.Equal(t, "@bigbob", incoming[0].Handle)

	assert.Empty(t, OutgoingRequests(ps, me))
}
