package models

// Like is one row of the append-only likes relation. The composite primary
// key (liker_user_id, liked_user_id) is the uniqueness constraint: a second
// insert for the same pair fails the key condition instead of duplicating.
type Like struct {
	LikerUserID string `dynamodbav:"liker_user_id" json:"liker_user_id"` // Partition Key
	LikedUserID string `dynamodbav:"liked_user_id" json:"liked_user_id"` // Sort Key
	CreatedAt   string `dynamodbav:"created_at" json:"created_at"`
}

// LikesTable is the DynamoDB table name for likes
const LikesTable = "Likes"

// LikeOutcome is the terminal state of a like attempt. AlreadyLiked is a
// normal outcome, not an error: the pair was recorded by an earlier attempt.
type LikeOutcome string

const (
	OutcomeRecorded     LikeOutcome = "recorded"
	OutcomeAlreadyLiked LikeOutcome = "already_liked"
)
