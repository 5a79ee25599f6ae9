package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"spark_server/models"
	"spark_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrFetchFailed wraps any transport/auth failure of a feed load. The deck
// surfaces it as an Error state; there is no automatic retry.
var ErrFetchFailed = errors.New("feed fetch failed")

// FeedStore is the slice of storage the feed path needs: a bounded filtered
// scan for the candidate batch and a complete (paginated) query for the
// viewer's likes.
type FeedStore interface {
	ScanWithFilter(ctx context.Context, tableName string, filterExpression string,
		expressionAttributeNames map[string]string,
		expressionAttributeValues map[string]types.AttributeValue,
		limit int32, result interface{}) error
	QueryAllItems(ctx context.Context, tableName string, keyConditionExpression string,
		expressionAttributeValues map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error)
}

// FeedService loads the bounded batch of browsable candidates for a viewer.
type FeedService struct {
	Store     FeedStore
	Resolver  URLResolver
	BatchSize int32
}

// Load fetches up to BatchSize complete profiles excluding the viewer and
// normalizes them into Candidates. Candidates come back in whatever order
// the storage returns them; no client-side ordering is imposed. Nothing is
// marked as seen, so a later reload may resurface the same profiles.
func (fs *FeedService) Load(ctx context.Context, currentUserID string) ([]models.Candidate, error) {
	filterExpression := "#complete = :complete AND user_id <> :me"
	expressionAttributeNames := map[string]string{
		"#complete": "is_profile_complete",
	}
	expressionAttributeValues := map[string]types.AttributeValue{
		":complete": &types.AttributeValueMemberBOOL{Value: true},
		":me":       &types.AttributeValueMemberS{Value: currentUserID},
	}

	// The limit bounds items evaluated before the filter, so the batch can
	// come back short while eligible profiles sit later in the table. The
	// contract only promises a bounded batch, not a full one.
	var records []models.ProfileRecord
	err := fs.Store.ScanWithFilter(ctx, models.ProfilesTable, filterExpression,
		expressionAttributeNames, expressionAttributeValues, fs.BatchSize, &records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	liked := fs.likedByViewer(ctx, currentUserID)
	candidates := buildCandidates(ctx, records, liked, fs.Resolver, time.Now())

	log.Printf("✅ Feed loaded: %d candidates for %s", len(candidates), currentUserID)
	return candidates, nil
}

// likedByViewer returns the set of user ids the viewer has already liked, so
// resurfaced candidates render with likedByMe set. The query follows
// pagination to the end: likes accumulate for the account's lifetime and
// must not be truncated at any batch boundary. A failure here degrades to
// an empty set rather than failing the whole load.
func (fs *FeedService) likedByViewer(ctx context.Context, currentUserID string) map[string]bool {
	keyCondition := "liker_user_id = :me"
	expressionValues := map[string]types.AttributeValue{
		":me": &types.AttributeValueMemberS{Value: currentUserID},
	}

	items, err := fs.Store.QueryAllItems(ctx, models.LikesTable, keyCondition, expressionValues)
	if err != nil {
		log.Printf("⚠️ Could not fetch likes for %s, feed renders without likedByMe: %v", currentUserID, err)
		return nil
	}

	liked := make(map[string]bool, len(items))
	for _, item := range items {
		var like models.Like
		if err := attributevalue.UnmarshalMap(item, &like); err != nil {
			log.Printf("⚠️ Skipping unreadable like record: %v", err)
			continue
		}
		liked[like.LikedUserID] = true
	}
	return liked
}

// buildCandidates normalizes raw profile records into the deck's Candidate
// shape. Image references resolve in their stored order; a reference that
// fails to resolve is dropped from the feed card while the survivors keep
// their relative order. A record with an unparseable date of birth is
// skipped entirely rather than shown with a bogus age.
func buildCandidates(ctx context.Context, records []models.ProfileRecord, liked map[string]bool, resolver URLResolver, now time.Time) []models.Candidate {
	candidates := make([]models.Candidate, 0, len(records))
	for _, rec := range records {
		age, err := utils.CalculateAge(rec.DateOfBirth, now)
		if err != nil {
			log.Printf("⚠️ Skipping candidate %s: %v", rec.UserID, err)
			continue
		}

		images := make([]models.ImageRef, 0, len(rec.ProfilePictures))
		for _, ref := range rec.ProfilePictures {
			url, err := resolver.Resolve(ctx, ref)
			if err != nil {
				log.Printf("⚠️ Image '%s' for candidate %s unavailable: %v", ref, rec.UserID, err)
				continue
			}
			images = append(images, models.ImageRef{Ref: ref, URL: url})
		}

		candidates = append(candidates, models.Candidate{
			ID:          rec.UserID,
			DisplayName: rec.FirstName,
			Age:         age,
			Gender:      rec.Gender,
			Bio:         rec.Bio,
			Interests:   rec.Interests,
			Location:    rec.Location,
			LookingFor:  rec.LookingFor,
			Images:      images,
			LikedByMe:   liked[rec.UserID],
		})
	}
	return candidates
}
