package request

import "time"

// CreateRequest is the body of POST /requests. Every field is optional at
// decode time; storage decides what is required.
type CreateRequest struct {
	ReqDatetime *time.Time `json:"req_datetime"`
	ReqType     *string    `json:"req_type"`
	DateFrom    *Date      `json:"date_from"`
	DateTo      *Date      `json:"date_to"`
	TimeFrom    *string    `json:"time_from"`
	TimeTo      *string    `json:"time_to"`
	UserID      *string    `json:"user_id"`
	Reason      *string    `json:"reason"`
	Attachment  *string    `json:"attachment"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

const MsgRequestDeleted = "Request deleted successfully"

func (req CreateRequest) toEntity() *Request {
	attachment := ""
	if req.Attachment != nil {
		attachment = *req.Attachment
	}
	return &Request{
		ReqDatetime: req.ReqDatetime,
		ReqType:     req.ReqType,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		TimeFrom:    req.TimeFrom,
		TimeTo:      req.TimeTo,
		UserID:      req.UserID,
		Reason:      req.Reason,
		Attachment:  attachment,
		Status:      StatusPending,
	}
}
