// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"
	"chore-app/internal/transport/http/dto"
)

// ToDTOMember maps entities.Member to transport model.
func ToDTOMember(m entities.Member) dto.Member {
	return dto.Member{
		MemberId: m.ID,
		Name:     m.Name,
		Position: m.Position,
	}
}

// ToDTOMemberList maps a roster to transport slice.
func ToDTOMemberList(list []entities.Member) []dto.Member {
	res := make([]dto.Member, 0, len(list))
	for _, m := range list {
		res = append(res, ToDTOMember(m))
	}
	return res
}

// ToDTOChore maps entities.Chore to transport model.
func ToDTOChore(c entities.Chore) dto.Chore {
	return dto.Chore{
		ChoreId:  c.ID,
		Name:     c.Name,
		Subtasks: nonNil(c.Subtasks),
	}
}

// ToDTOChoreList maps a catalog to transport slice.
func ToDTOChoreList(list []entities.Chore) []dto.Chore {
	res := make([]dto.Chore, 0, len(list))
	for _, c := range list {
		res = append(res, ToDTOChore(c))
	}
	return res
}

// ToDTOAssignment maps entities.Assignment to transport model.
func ToDTOAssignment(a entities.Assignment) dto.Assignment {
	return dto.Assignment{
		AssignmentId:      a.ID,
		MemberId:          a.MemberID,
		ChoreId:           a.ChoreID,
		WeekStartDate:     a.Cycle.String(),
		Completed:         a.Completed,
		Late:              a.Late,
		IsLate:            a.IsLate(),
		SubtasksCompleted: nonNil(a.SubtasksCompleted),
	}
}

// ToDTOAssignmentList maps assignments to transport slice.
func ToDTOAssignmentList(list []entities.Assignment) []dto.Assignment {
	res := make([]dto.Assignment, 0, len(list))
	for _, a := range list {
		res = append(res, ToDTOAssignment(a))
	}
	return res
}

// ToDTOAssignmentDetailsList maps the assignment read model to transport slice.
func ToDTOAssignmentDetailsList(list []entities.AssignmentDetails) []dto.AssignmentDetails {
	res := make([]dto.AssignmentDetails, 0, len(list))
	for _, d := range list {
		res = append(res, dto.AssignmentDetails{
			Assignment: ToDTOAssignment(d.Assignment),
			Member:     ToDTOMember(d.Member),
			Chore:      ToDTOChore(d.Chore),
		})
	}
	return res
}

// ToDTORotate maps a rotation outcome to the trigger response.
func ToDTORotate(r entities.RotationResult) dto.RotateResponse {
	skipped := make([]dto.RotationSkip, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		skipped = append(skipped, dto.RotationSkip{ChoreId: s.ChoreID, MemberId: s.MemberID, Reason: s.Reason})
	}
	return dto.RotateResponse{
		Success:       true,
		Message:       "Chores rotated successfully",
		WeekStartDate: r.Cycle.String(),
		Assignments:   ToDTOAssignmentList(r.Created),
		Skipped:       skipped,
	}
}

// ToDTOMarkLate builds the mark-late trigger response.
func ToDTOMarkLate(cycle calendar.CycleKey, marked int64) dto.MarkLateResponse {
	return dto.MarkLateResponse{
		Success:       true,
		Message:       "Late chores marked successfully",
		WeekStartDate: cycle.String(),
		Marked:        marked,
	}
}

// ToDTOCycleInfo maps calendar facts to transport model.
func ToDTOCycleInfo(info entities.CycleInfo) dto.CycleInfo {
	return dto.CycleInfo{
		Now:               info.Now.Format(time.RFC3339),
		WeekStartDate:     info.Cycle.String(),
		WeekEndDate:       info.CycleEnd.String(),
		NextWeekStartDate: info.Next.String(),
		PrevWeekStartDate: info.Previous.String(),
		RotationDay:       calendar.RotationDay.String(),
		QualityCheckDay:   calendar.QualityCheckDay.String(),
		IsRotationDay:     info.IsRotationDay,
		IsQualityCheckDay: info.IsQualityCheckDay,
	}
}

// ToDTOCycleBoard maps the cycle overview to transport model.
func ToDTOCycleBoard(b entities.CycleBoard) dto.CycleBoard {
	return dto.CycleBoard{
		WeekStartDate: b.Cycle.String(),
		WeekEndDate:   b.CycleEnd.String(),
		Assignments:   ToDTOAssignmentDetailsList(b.Assignments),
		Completed:     b.Completed,
		Total:         b.Total,
		LateWarning:   b.LateWarning,
	}
}

// ToDTORating maps entities.Rating to transport model.
func ToDTORating(r entities.Rating) dto.Rating {
	return dto.Rating{
		RatingId:      r.ID,
		RaterId:       r.RaterID,
		RateeId:       r.RateeID,
		ChoreId:       r.ChoreID,
		WeekStartDate: r.Cycle.String(),
		Rating:        r.Score,
	}
}

// ToDTOQualityCheck maps the quality-check view to transport model.
func ToDTOQualityCheck(q entities.QualityCheck) dto.QualityCheck {
	ratings := make([]dto.Rating, 0, len(q.Ratings))
	for _, r := range q.Ratings {
		ratings = append(ratings, ToDTORating(r))
	}
	return dto.QualityCheck{
		WeekStartDate: q.Cycle.String(),
		Available:     q.Available,
		Assignments:   ToDTOAssignmentDetailsList(q.Assignments),
		Ratings:       ratings,
		Rated:         q.Rated,
		Total:         q.Total,
		Average:       q.Average,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
