package models

// Task is one item of the daily checklist.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// WaterState tracks the water counter and its daily goal, in milliliters.
type WaterState struct {
	ConsumedML int `json:"consumed_ml"`
	GoalML     int `json:"goal_ml"`
}

// ActivityLog holds the free-text sleep and cardio fields.
type ActivityLog struct {
	BedTime        string `json:"bed_time"`
	WakeTime       string `json:"wake_time"`
	CardioTime     string `json:"cardio_time"`
	CardioDistance string `json:"cardio_distance"`
}

// NutritionLog is the free-text meal diary.
type NutritionLog struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}
