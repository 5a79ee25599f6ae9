package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"spark_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// UserProfileService manages the profile records the feed draws from.
// Profile editing itself is plain CRUD; the one rule that matters to the
// browsing engine is is_profile_complete, which gates feed eligibility.
type UserProfileService struct {
	Dynamo   *DynamoService
	Resolver URLResolver
}

// CreateProfile stores a new profile record. A missing user_id gets a fresh
// uuid; timestamps and the completeness flag are computed server-side.
func (ups *UserProfileService) CreateProfile(ctx context.Context, record models.ProfileRecord) (*models.ProfileRecord, error) {
	if record.UserID == "" {
		record.UserID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if record.CreatedAt == "" {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	record.IsProfileComplete = isProfileComplete(record)

	if err := ups.Dynamo.PutItem(ctx, models.ProfilesTable, record); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	log.Printf("✅ Profile created: %s (complete=%v)", record.UserID, record.IsProfileComplete)
	return &record, nil
}

// GetProfile retrieves a raw profile record by user id. Returns
// ErrItemNotFound (wrapped) when no such profile exists.
func (ups *UserProfileService) GetProfile(ctx context.Context, userID string) (*models.ProfileRecord, error) {
	key := map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile '%s': %w", userID, err)
	}

	var record models.ProfileRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile '%s': %w", userID, err)
	}
	return &record, nil
}

// GetProfileView retrieves a profile with its image slots resolved for
// display. Unlike the feed, the owner view keeps failed slots in place
// (marked unavailable) so positions in the picture editor stay stable.
func (ups *UserProfileService) GetProfileView(ctx context.Context, userID string) (*models.ProfileView, error) {
	record, err := ups.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &models.ProfileView{
		ProfileRecord: *record,
		Images:        make([]models.ImageRef, 0, len(record.ProfilePictures)),
	}
	for _, ref := range record.ProfilePictures {
		url, err := ups.Resolver.Resolve(ctx, ref)
		if err != nil {
			log.Printf("⚠️ Image '%s' for profile %s unavailable: %v", ref, userID, err)
			view.Images = append(view.Images, models.ImageRef{Ref: ref, Unavailable: true})
			continue
		}
		view.Images = append(view.Images, models.ImageRef{Ref: ref, URL: url})
	}
	return view, nil
}

// isProfileComplete decides feed eligibility: name, birth date, gender and
// at least one picture.
func isProfileComplete(record models.ProfileRecord) bool {
	return record.FirstName != "" &&
		record.DateOfBirth != "" &&
		record.Gender != "" &&
		len(record.ProfilePictures) > 0
}
