package dashboard

import "go-leave/internal/request"

// GroupCount is one row of the requests table grouped by type and status.
type GroupCount struct {
	ReqType string `gorm:"column:req_type"`
	Status  string `gorm:"column:status"`
	Count   int64  `gorm:"column:count"`
}

type Statistics struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalRequests int64 `json:"totalRequests"`

	TotalLeaves         int64 `json:"totalLeaves"`
	TotalPendingLeaves  int64 `json:"totalPendingLeaves"`
	TotalApprovedLeaves int64 `json:"totalApprovedLeaves"`
	TotalRejectedLeaves int64 `json:"totalRejectedLeaves"`

	TotalPermissions         int64 `json:"totalPermissions"`
	TotalPendingPermissions  int64 `json:"totalPendingPermissions"`
	TotalApprovedPermissions int64 `json:"totalApprovedPermissions"`
	TotalRejectedPermissions int64 `json:"totalRejectedPermissions"`

	TotalSwaps         int64 `json:"totalSwaps"`
	TotalPendingSwaps  int64 `json:"totalPendingSwaps"`
	TotalApprovedSwaps int64 `json:"totalApprovedSwaps"`
	TotalRejectedSwaps int64 `json:"totalRejectedSwaps"`

	// LeaveTypes holds the total per leave subtype; every subtype is present.
	LeaveTypes map[string]int64 `json:"leaveTypes"`
}

// Fold reduces grouped counts into Statistics. Types outside the
// vocabulary only count towards TotalRequests.
func Fold(totalUsers int64, groups []GroupCount) Statistics {
	stats := Statistics{
		TotalUsers: totalUsers,
		LeaveTypes: make(map[string]int64, len(request.LeaveTypes)),
	}
	for _, t := range request.LeaveTypes {
		stats.LeaveTypes[t] = 0
	}

	for _, g := range groups {
		stats.TotalRequests += g.Count

		switch {
		case request.IsLeaveType(g.ReqType):
			stats.LeaveTypes[g.ReqType] += g.Count
			add(g, &stats.TotalLeaves, &stats.TotalPendingLeaves, &stats.TotalApprovedLeaves, &stats.TotalRejectedLeaves)
		case g.ReqType == request.TypePermission:
			add(g, &stats.TotalPermissions, &stats.TotalPendingPermissions, &stats.TotalApprovedPermissions, &stats.TotalRejectedPermissions)
		case g.ReqType == request.TypeSwap:
			add(g, &stats.TotalSwaps, &stats.TotalPendingSwaps, &stats.TotalApprovedSwaps, &stats.TotalRejectedSwaps)
		}
	}
	return stats
}

func add(g GroupCount, total, pending, approved, rejected *int64) {
	*total += g.Count
	switch g.Status {
	case request.StatusPending:
		*pending += g.Count
	case request.StatusApproved:
		*approved += g.Count
	case request.StatusRejected:
		*rejected += g.Count
	}
}
