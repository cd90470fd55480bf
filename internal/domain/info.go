package domain

import (
	"context"

	"github.com/userhub/backend/internal/model"
)

const serviceVersion = "1.0.0"

type InfoDomain interface {
	ServiceInfo(ctx context.Context, req *model.ServiceInfoRequest) (*model.ServiceInfoResponse, error)
}

type infoDomain struct {
}

func NewInfoDomain() InfoDomain {
	return &infoDomain{}
}

func (d *infoDomain) ServiceInfo(
	ctx context.Context, req *model.ServiceInfoRequest,
) (*model.ServiceInfoResponse, error) {
	return &model.ServiceInfoResponse{
		Message: "Welcome to User Management API",
		Version: serviceVersion,
	}, nil
}
