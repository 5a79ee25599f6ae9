package models

// ProfileRecord is the raw profile item as stored in DynamoDB. Field names
// match the backend contract exactly; browsers never see this shape directly,
// the feed service normalizes it into a Candidate first.
type ProfileRecord struct {
	UserID            string   `dynamodbav:"user_id" json:"user_id"` // Partition Key
	FirstName         string   `dynamodbav:"first_name" json:"first_name"`
	LastName          string   `dynamodbav:"last_name,omitempty" json:"last_name,omitempty"`
	DateOfBirth       string   `dynamodbav:"date_of_birth" json:"date_of_birth"` // ISO date (YYYY-MM-DD)
	Gender            string   `dynamodbav:"gender" json:"gender"`
	Bio               string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Interests         []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Location          string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	LookingFor        string   `dynamodbav:"looking_for,omitempty" json:"looking_for,omitempty"`
	ProfilePictures   []string `dynamodbav:"profile_pictures,omitempty" json:"profile_pictures,omitempty"` // absolute URLs or storage keys
	CreatedAt         string   `dynamodbav:"created_at" json:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at" json:"updated_at"`
	IsProfileComplete bool     `dynamodbav:"is_profile_complete" json:"is_profile_complete"`
}

// ProfilesTable is the DynamoDB table name for profiles
const ProfilesTable = "Profiles"

// ProfileView is a profile as returned to its owner: the stored record plus
// the resolved image slots. A slot whose reference failed to resolve stays in
// place marked unavailable, so the photo count and positions are stable.
type ProfileView struct {
	ProfileRecord
	Images []ImageRef `json:"images"`
}
