package auth

import "time"

// Preferences travel with the profile record and are persisted verbatim.
type Preferences struct {
	FavoriteLocations []string    `json:"favoriteLocations"`
	SavedPlans        []SavedPlan `json:"savedPlans"`
	Notifications     bool        `json:"notifications"`
}

// SavedPlan is a user-stored trip plan.
type SavedPlan struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the stored session record. Its presence in the local store is
// what "authenticated" means here; there are no credentials or tokens behind
// it.
type Profile struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	JoinDate    time.Time   `json:"joinDate"`
	Preferences Preferences `json:"preferences"`
}

// Session wraps a profile with the user-facing message of the transition that
// produced it.
type Session struct {
	Profile Profile `json:"profile"`
	Message string  `json:"message"`
}
