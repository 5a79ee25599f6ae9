package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"spark_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	fail map[string]bool
}

func (r stubResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if r.fail[ref] {
		return "", errors.New("no such key")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	return "https://cdn.example.com/" + ref, nil
}

var buildNow = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

// fakeFeedStore serves canned profile records and like rows.
type fakeFeedStore struct {
	records  []models.ProfileRecord
	likes    []models.Like
	scanErr  error
	likesErr error
}

func (s *fakeFeedStore) ScanWithFilter(ctx context.Context, tableName string, filterExpression string,
	expressionAttributeNames map[string]string,
	expressionAttributeValues map[string]types.AttributeValue,
	limit int32, result interface{}) error {
	if s.scanErr != nil {
		return s.scanErr
	}
	out := result.(*[]models.ProfileRecord)
	*out = append([]models.ProfileRecord(nil), s.records...)
	return nil
}

func (s *fakeFeedStore) QueryAllItems(ctx context.Context, tableName string, keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	if s.likesErr != nil {
		return nil, s.likesErr
	}
	items := make([]map[string]types.AttributeValue, 0, len(s.likes))
	for _, like := range s.likes {
		item, err := attributevalue.MarshalMap(like)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func TestLoadMarksLikesBeyondOneBatch(t *testing.T) {
	// A long-lived account: far more recorded likes than one feed batch.
	likes := make([]models.Like, 0, 120)
	for i := 1; i <= 120; i++ {
		likes = append(likes, models.Like{LikerUserID: "me", LikedUserID: fmt.Sprintf("u%d", i)})
	}
	store := &fakeFeedStore{
		records: []models.ProfileRecord{
			{UserID: "u110", FirstName: "Ana", DateOfBirth: "1996-03-14", Gender: "female"},
			{UserID: "u999", FirstName: "Bea", DateOfBirth: "2001-12-01", Gender: "female"},
		},
		likes: likes,
	}
	fs := &FeedService{Store: store, Resolver: stubResolver{}, BatchSize: 50}

	candidates, err := fs.Load(context.Background(), "me")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// u110 sits well past the 50th like; it must still render as liked
	assert.True(t, candidates[0].LikedByMe)
	assert.False(t, candidates[1].LikedByMe)
}

func TestLoadSurfacesFetchError(t *testing.T) {
	fs := &FeedService{
		Store:     &fakeFeedStore{scanErr: errors.New("connection refused")},
		Resolver:  stubResolver{},
		BatchSize: 50,
	}

	_, err := fs.Load(context.Background(), "me")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestLoadToleratesLikesQueryFailure(t *testing.T) {
	store := &fakeFeedStore{
		records:  []models.ProfileRecord{{UserID: "u1", FirstName: "Ana", DateOfBirth: "1996-03-14", Gender: "female"}},
		likes:    []models.Like{{LikerUserID: "me", LikedUserID: "u1"}},
		likesErr: errors.New("throttled"),
	}
	fs := &FeedService{Store: store, Resolver: stubResolver{}, BatchSize: 50}

	// The batch still loads; it just renders without likedByMe
	candidates, err := fs.Load(context.Background(), "me")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.False(t, candidates[0].LikedByMe)
}

func TestBuildCandidatesNormalizesRecords(t *testing.T) {
	records := []models.ProfileRecord{
		{
			UserID:          "u1",
			FirstName:       "Ana",
			LastName:        "Quinn",
			DateOfBirth:     "1996-03-14",
			Gender:          "female",
			Bio:             "outdoors",
			Interests:       []string{"climbing"},
			Location:        "Lisbon",
			LookingFor:      "friends",
			ProfilePictures: []string{"p1.jpg"},
		},
		{UserID: "u2", FirstName: "Bea", DateOfBirth: "2001-12-01", Gender: "female"},
	}

	candidates := buildCandidates(context.Background(), records, nil, stubResolver{}, buildNow)
	require.Len(t, candidates, 2)

	ana := candidates[0]
	assert.Equal(t, "u1", ana.ID)
	assert.Equal(t, "Ana", ana.DisplayName) // last name is not broadcast
	assert.Equal(t, 30, ana.Age)
	assert.Equal(t, "Lisbon", ana.Location)
	require.Len(t, ana.Images, 1)
	assert.Equal(t, "https://cdn.example.com/p1.jpg", ana.Images[0].URL)

	bea := candidates[1]
	assert.Equal(t, 24, bea.Age)
	assert.Empty(t, bea.Images)
}

func TestBuildCandidatesDropsOnlyFailedImages(t *testing.T) {
	records := []models.ProfileRecord{{
		UserID:          "u1",
		FirstName:       "Ana",
		DateOfBirth:     "1996-03-14",
		Gender:          "female",
		ProfilePictures: []string{"p1.jpg", "p2.jpg", "p3.jpg"},
	}}

	resolver := stubResolver{fail: map[string]bool{"p2.jpg": true}}
	candidates := buildCandidates(context.Background(), records, nil, resolver, buildNow)
	require.Len(t, candidates, 1)

	// One failed resolution leaves a two-element list, original order kept,
	// and never fails the candidate.
	images := candidates[0].Images
	require.Len(t, images, 2)
	assert.Equal(t, "p1.jpg", images[0].Ref)
	assert.Equal(t, "p3.jpg", images[1].Ref)
}

func TestBuildCandidatesAbsoluteURLsPassThrough(t *testing.T) {
	records := []models.ProfileRecord{{
		UserID:          "u1",
		FirstName:       "Ana",
		DateOfBirth:     "1996-03-14",
		Gender:          "female",
		ProfilePictures: []string{"https://pics.example.com/ana.jpg"},
	}}

	candidates := buildCandidates(context.Background(), records, nil, stubResolver{}, buildNow)
	require.Len(t, candidates, 1)
	assert.Equal(t, "https://pics.example.com/ana.jpg", candidates[0].Images[0].URL)
}

func TestBuildCandidatesMarksAlreadyLiked(t *testing.T) {
	records := []models.ProfileRecord{
		{UserID: "u1", FirstName: "Ana", DateOfBirth: "1996-03-14", Gender: "female"},
		{UserID: "u2", FirstName: "Bea", DateOfBirth: "2001-12-01", Gender: "female"},
	}

	liked := map[string]bool{"u2": true}
	candidates := buildCandidates(context.Background(), records, liked, stubResolver{}, buildNow)
	require.Len(t, candidates, 2)
	assert.False(t, candidates[0].LikedByMe)
	assert.True(t, candidates[1].LikedByMe)
}

func TestBuildCandidatesSkipsUnparseableBirthDate(t *testing.T) {
	records := []models.ProfileRecord{
		{UserID: "u1", FirstName: "Ana", DateOfBirth: "not-a-date", Gender: "female"},
		{UserID: "u2", FirstName: "Bea", DateOfBirth: "2001-12-01", Gender: "female"},
	}

	candidates := buildCandidates(context.Background(), records, nil, stubResolver{}, buildNow)
	require.Len(t, candidates, 1)
	assert.Equal(t, "u2", candidates[0].ID)
}
