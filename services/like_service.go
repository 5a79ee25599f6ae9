package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"spark_server/models"
)

// LikeStore is the slice of storage the like path needs: a write that fails
// its condition when the key already exists.
type LikeStore interface {
	PutItemWithCondition(ctx context.Context, tableName string, item interface{}, conditionExpression string) error
}

// LikeAckEmitter pushes a like outcome to the liker's realtime channel.
// Implemented by the socket hub; nil disables acks.
type LikeAckEmitter interface {
	EmitLikeAck(likerUserID, likedUserID string, outcome models.LikeOutcome)
}

// LikeService records likes into the append-only likes relation. A
// uniqueness conflict on the (liker, liked) pair is a normal terminal
// outcome, never duplicate storage and never a hard error.
type LikeService struct {
	Store LikeStore
	Acks  LikeAckEmitter
}

// likeCondition rejects the insert when the pair already exists.
const likeCondition = "attribute_not_exists(liker_user_id) AND attribute_not_exists(liked_user_id)"

// Record inserts the (likerUserID, likedUserID) pair. Re-invoking with the
// same pair yields OutcomeAlreadyLiked with a nil error; only transport/auth
// failures return an error, and the caller's optimistic UI stays applied.
func (ls *LikeService) Record(ctx context.Context, likerUserID, likedUserID string) (models.LikeOutcome, error) {
	like := models.Like{
		LikerUserID: likerUserID,
		LikedUserID: likedUserID,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	outcome := models.OutcomeRecorded
	err := ls.Store.PutItemWithCondition(ctx, models.LikesTable, like, likeCondition)
	switch {
	case errors.Is(err, ErrConditionFailed):
		outcome = models.OutcomeAlreadyLiked
	case err != nil:
		return "", fmt.Errorf("failed to record like %s -> %s: %w", likerUserID, likedUserID, err)
	}

	log.Printf("✅ Like %s -> %s: %s", likerUserID, likedUserID, outcome)
	if ls.Acks != nil {
		ls.Acks.EmitLikeAck(likerUserID, likedUserID, outcome)
	}
	return outcome, nil
}
