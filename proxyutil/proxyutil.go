package proxyutil

import (
	"context"

	"github.com/xxxsen/davgate/server/model"
)

type driveInfoKeyType struct{}

var driveInfoKey = driveInfoKeyType{}

func SetDriveInfo(ctx context.Context, info *model.DriveConfig) context.Context {
	return context.WithValue(ctx, driveInfoKey, info)
}

func GetDriveInfo(ctx context.Context) (*model.DriveConfig, bool) {
	info, ok := ctx.Value(driveInfoKey).(*model.DriveConfig)
	return info, ok
}

type CommonResponse struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
