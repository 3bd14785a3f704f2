// Package dto contains the JSON request and response models of the HTTP API.
package dto

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	UNAUTHORIZED    ErrorResponseErrorCode = "UNAUTHORIZED"
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND        ErrorResponseErrorCode = "NOT_FOUND"
	ALREADYROTATED  ErrorResponseErrorCode = "ALREADY_ROTATED"
	EMPTYROSTER     ErrorResponseErrorCode = "EMPTY_ROSTER"
	EMPTYCATALOG    ErrorResponseErrorCode = "EMPTY_CATALOG"
	UNKNOWNSUBTASK  ErrorResponseErrorCode = "UNKNOWN_SUBTASK"
	SELFRATING      ErrorResponseErrorCode = "SELF_RATING"
	NOTCHECKDAY     ErrorResponseErrorCode = "NOT_QUALITY_CHECK_DAY"
	INVALIDSCORE    ErrorResponseErrorCode = "INVALID_SCORE"
	RATINGCLOSED    ErrorResponseErrorCode = "RATING_CLOSED"
	INTERNAL        ErrorResponseErrorCode = "INTERNAL"
)

// ErrorBody is the payload of ErrorResponse.
type ErrorBody struct {
	Code    ErrorResponseErrorCode `json:"code"`
	Message string                 `json:"message"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Member defines model for Member.
type Member struct {
	MemberId string `json:"member_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Chore defines model for Chore.
type Chore struct {
	ChoreId  string   `json:"chore_id"`
	Name     string   `json:"name"`
	Subtasks []string `json:"subtasks"`
}

// Assignment defines model for Assignment.
type Assignment struct {
	AssignmentId      string   `json:"assignment_id"`
	MemberId          string   `json:"member_id"`
	ChoreId           string   `json:"chore_id"`
	WeekStartDate     string   `json:"week_start_date"`
	Completed         bool     `json:"completed"`
	Late              bool     `json:"late"`
	IsLate            bool     `json:"is_late"`
	SubtasksCompleted []string `json:"subtasks_completed"`
}

// AssignmentDetails defines model for an assignment with member and chore resolved.
type AssignmentDetails struct {
	Assignment
	Member Member `json:"member"`
	Chore  Chore  `json:"chore"`
}

// RotationSkip defines model for a chore left out of rotation.
type RotationSkip struct {
	ChoreId  string `json:"chore_id"`
	MemberId string `json:"member_id,omitempty"`
	Reason   string `json:"reason"`
}

// RotateResponse is returned by the rotation trigger.
type RotateResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	WeekStartDate string         `json:"week_start_date"`
	Assignments   []Assignment   `json:"assignments"`
	Skipped       []RotationSkip `json:"skipped"`
}

// MarkLateResponse is returned by the mark-late trigger.
type MarkLateResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	WeekStartDate string `json:"week_start_date"`
	Marked        int64  `json:"marked"`
}

// CycleInfo defines model for calendar facts.
type CycleInfo struct {
	Now               string `json:"now"`
	WeekStartDate     string `json:"week_start_date"`
	WeekEndDate       string `json:"week_end_date"`
	NextWeekStartDate string `json:"next_week_start_date"`
	PrevWeekStartDate string `json:"previous_week_start_date"`
	RotationDay       string `json:"rotation_day"`
	QualityCheckDay   string `json:"quality_check_day"`
	IsRotationDay     bool   `json:"is_rotation_day"`
	IsQualityCheckDay bool   `json:"is_quality_check_day"`
}

// CycleBoard defines model for the current-cycle overview.
type CycleBoard struct {
	WeekStartDate string              `json:"week_start_date"`
	WeekEndDate   string              `json:"week_end_date"`
	Assignments   []AssignmentDetails `json:"assignments"`
	Completed     int                 `json:"completed"`
	Total         int                 `json:"total"`
	LateWarning   bool                `json:"late_warning"`
}

// Rating defines model for Rating.
type Rating struct {
	RatingId      string `json:"rating_id"`
	RaterId       string `json:"rater_id"`
	RateeId       string `json:"ratee_id"`
	ChoreId       string `json:"chore_id"`
	WeekStartDate string `json:"week_start_date"`
	Rating        int    `json:"rating"`
}

// QualityCheck defines model for the rating view of the previous cycle.
type QualityCheck struct {
	WeekStartDate string              `json:"week_start_date"`
	Available     bool                `json:"available"`
	Assignments   []AssignmentDetails `json:"assignments"`
	Ratings       []Rating            `json:"ratings"`
	Rated         int                 `json:"rated"`
	Total         int                 `json:"total"`
	Average       float64             `json:"average"`
}

// ToggleSubtaskJSONRequestBody defines body for PostAssignmentsToggle.
type ToggleSubtaskJSONRequestBody struct {
	Label string `json:"label"`
}

// SubmitRatingJSONRequestBody defines body for PostRatings.
type SubmitRatingJSONRequestBody struct {
	AssignmentId string `json:"assignment_id"`
	Rating       int    `json:"rating"`
}
