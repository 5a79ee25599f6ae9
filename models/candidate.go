package models

// ImageRef is one slot in a candidate's photo set: the stored reference plus
// the URL it resolved to. A slot whose reference failed to resolve is marked
// Unavailable instead of being removed, so photo positions stay stable.
type ImageRef struct {
	Ref         string `json:"ref"`
	URL         string `json:"url,omitempty"`
	Unavailable bool   `json:"unavailable,omitempty"`
}

// Candidate is one browsable profile as consumed by the deck. Immutable after
// the feed load except LikedByMe, which flips false -> true at most once.
type Candidate struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Age         int        `json:"age"` // derived from date_of_birth, not stored
	Gender      string     `json:"gender"`
	Bio         string     `json:"bio,omitempty"`
	Interests   []string   `json:"interests,omitempty"`
	Location    string     `json:"location,omitempty"`
	LookingFor  string     `json:"lookingFor,omitempty"`
	Images      []ImageRef `json:"images"`
	LikedByMe   bool       `json:"likedByMe"`
}
