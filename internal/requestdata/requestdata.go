package requestdata

import (
	"context"

	"github.com/google/uuid"
)

const (
	RolePatient  = "patient"
	RoleEmployee = "employee"
)

var requestDataKey = struct{}{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData carries the authenticated principal through a request.
type RequestData struct {
	TokenString string
	SubjectID   uuid.UUID
	Role        string
}

func (rd *RequestData) IsPatient() bool  { return rd != nil && rd.Role == RolePatient }
func (rd *RequestData) IsEmployee() bool { return rd != nil && rd.Role == RoleEmployee }
