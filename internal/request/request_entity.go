package request

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeSickLeave      = "sick leave"
	TypeAnnualLeave    = "annual leave"
	TypeOtherLeave     = "other leave"
	TypeEmergencyLeave = "emergency leave"
	TypeMaternityLeave = "maternity leave"
	TypePermission     = "permission"
	TypeSwap           = "swap"
)

// LeaveTypes are the request types counted as leave.
var LeaveTypes = []string{
	TypeSickLeave,
	TypeAnnualLeave,
	TypeOtherLeave,
	TypeEmergencyLeave,
	TypeMaternityLeave,
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func IsValidType(t string) bool {
	switch t {
	case TypePermission, TypeSwap:
		return true
	}
	return IsLeaveType(t)
}

func IsLeaveType(t string) bool {
	for _, lt := range LeaveTypes {
		if lt == t {
			return true
		}
	}
	return false
}

// Request is a row of the requests table. Nullable columns are pointers so
// an absent field reaches storage as NULL.
type Request struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	ReqDatetime *time.Time `gorm:"column:req_datetime" json:"req_datetime"`
	ReqType     *string    `gorm:"column:req_type" json:"req_type"`
	DateFrom    *Date      `gorm:"column:date_from" json:"date_from"`
	DateTo      *Date      `gorm:"column:date_to" json:"date_to"`
	TimeFrom    *string    `gorm:"column:time_from" json:"time_from"`
	TimeTo      *string    `gorm:"column:time_to" json:"time_to"`
	UserID      *string    `gorm:"column:user_id" json:"user_id"`
	Reason      *string    `gorm:"column:reason" json:"reason"`
	Attachment  string     `gorm:"column:attachment" json:"attachment"`
	Status      string     `gorm:"column:status" json:"status"`
}

func (Request) TableName() string {
	return "requests"
}

// RequestWithName is a request joined with its requester's name.
type RequestWithName struct {
	Request `gorm:"embedded"`
	Name    *string `gorm:"column:name" json:"name"`
}
