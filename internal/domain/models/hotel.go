package models

type Hotel struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city"`
	Stars            int    `json:"stars"`
	DistanceToHaramM *int   `json:"distance_to_haram_m"`
	Description      string `json:"description"`
}
