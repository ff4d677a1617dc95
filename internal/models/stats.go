package models

// UserPerformance summarizes one cleaner's day: rooms finished and the whole
// minutes spent on rooms with a measurable duration.
type UserPerformance struct {
	Count         int `json:"count"`
	MinutesWorked int `json:"minutesWorked"`
}

// DailyStats is the aggregate view over the current roster, recomputed on
// demand by the analysis package.
type DailyStats struct {
	TotalRooms      int                        `json:"totalRooms"`
	CleanedRooms    int                        `json:"cleanedRooms"`
	InProgressRooms int                        `json:"inProgressRooms"`
	NotCleanedRooms int                        `json:"notCleanedRooms"`
	UserPerformance map[string]UserPerformance `json:"userPerformance"`
}
