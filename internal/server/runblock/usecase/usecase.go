package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Alwanly/service-runblock-gateway/internal/models"
	"github.com/Alwanly/service-runblock-gateway/internal/runblock"
	"github.com/Alwanly/service-runblock-gateway/internal/server/runblock/dto"
	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/Alwanly/service-runblock-gateway/pkg/pubsub"
	"github.com/Alwanly/service-runblock-gateway/pkg/wrapper"
)

const admissionIDPrefix = "rba_"

type UseCase struct {
	Defaults runblock.ModelDefaults
	// Publisher may be nil; admitted configurations are then only returned.
	Publisher pubsub.Publisher
	Channel   string
	Logger    *logger.CanonicalLogger

	Now   func() time.Time
	NewID func() string
}

type UseCaseInterface interface {
	AdmitRun(ctx context.Context, body []byte) wrapper.JSONResult
	AdmitLogin(ctx context.Context, body []byte) wrapper.JSONResult
	AdmitDownload(ctx context.Context, body []byte) wrapper.JSONResult
}

func NewUseCase(uc UseCase) *UseCase {
	if uc.Now == nil {
		uc.Now = time.Now
	}
	if uc.NewID == nil {
		uc.NewID = func() string { return admissionIDPrefix + uuid.NewString() }
	}
	if uc.Logger == nil {
		uc.Logger = logger.NewNop()
	}
	return &uc
}

func (uc *UseCase) AdmitRun(ctx context.Context, body []byte) wrapper.JSONResult {
	cfg, err := runblock.ValidateRun(body, uc.Defaults)
	if err != nil {
		return uc.reject(ctx, models.RunBlockRun, err)
	}
	logShared(ctx, cfg)
	return uc.admit(ctx, models.RunBlockRun, cfg)
}

func (uc *UseCase) AdmitLogin(ctx context.Context, body []byte) wrapper.JSONResult {
	cfg, err := runblock.ValidateLogin(body, uc.Defaults)
	if err != nil {
		return uc.reject(ctx, models.RunBlockLogin, err)
	}
	logShared(ctx, cfg.RunConfiguration)
	logger.AddToContext(ctx, logger.String(logger.FieldCredType, string(cfg.CredentialType)))
	if len(cfg.IgnoredFields) > 0 {
		logger.AddToContext(ctx, logger.Strings(logger.FieldIgnored, cfg.IgnoredFields))
		uc.Logger.WithRunBlockType(models.RunBlockLogin).Warn("login payload populates fields of a non-selected credential backend",
			logger.String(logger.FieldCredType, string(cfg.CredentialType)),
			logger.Strings(logger.FieldIgnored, cfg.IgnoredFields),
		)
	}
	return uc.admit(ctx, models.RunBlockLogin, cfg)
}

func (uc *UseCase) AdmitDownload(ctx context.Context, body []byte) wrapper.JSONResult {
	cfg, err := runblock.ValidateDownload(body, uc.Defaults)
	if err != nil {
		return uc.reject(ctx, models.RunBlockDownloadFiles, err)
	}
	logShared(ctx, cfg.RunConfiguration)
	return uc.admit(ctx, models.RunBlockDownloadFiles, cfg)
}

func (uc *UseCase) admit(ctx context.Context, blockType string, cfg interface{}) wrapper.JSONResult {
	id := uc.NewID()
	logger.AddToContext(ctx,
		logger.String(logger.FieldRunBlockType, blockType),
		logger.String(logger.FieldAdmissionID, id),
	)

	if uc.Publisher != nil {
		if err := uc.publish(ctx, id, blockType, cfg); err != nil {
			logger.AddToContext(ctx, logger.Err(err))
			uc.Logger.WithAdmissionID(id).WithError(err).Error("failed to hand off admitted run configuration")
			return wrapper.ResponseFailed(http.StatusServiceUnavailable, "run configuration is valid but could not be handed off", nil)
		}
	}

	return wrapper.ResponseSuccess(http.StatusOK, dto.AdmissionResponse{
		AdmissionID:   id,
		RunBlockType:  blockType,
		Configuration: cfg,
	})
}

func (uc *UseCase) publish(ctx context.Context, id, blockType string, cfg interface{}) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	notice, err := json.Marshal(models.AdmissionNotice{
		AdmissionID:   id,
		RunBlockType:  blockType,
		AdmittedAt:    uc.Now().UTC(),
		Configuration: raw,
	})
	if err != nil {
		return err
	}
	logger.AddToContext(ctx, logger.String(logger.FieldChannel, uc.Channel))
	return uc.Publisher.Publish(ctx, uc.Channel, string(notice))
}

func (uc *UseCase) reject(ctx context.Context, blockType string, err error) wrapper.JSONResult {
	logger.AddToContext(ctx, logger.String(logger.FieldRunBlockType, blockType))

	if errors.Is(err, runblock.ErrMalformedPayload) {
		logger.AddToContext(ctx, logger.Err(err))
		return wrapper.ResponseFailed(http.StatusBadRequest, err.Error(), nil)
	}

	fieldErrs := runblock.FieldErrors(err)
	if len(fieldErrs) == 0 {
		logger.AddToContext(ctx, logger.Err(err))
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to validate run configuration", nil)
	}

	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	logger.AddToContext(ctx,
		logger.Int(logger.FieldErrorCount, len(fieldErrs)),
		logger.Strings(logger.FieldErrorFields, fields),
	)

	return wrapper.ResponseFailed(http.StatusUnprocessableEntity, "run configuration rejected", dto.RejectionResponse{Errors: fieldErrs})
}

// logShared records which optional run settings were supplied, never their values.
func logShared(ctx context.Context, cfg runblock.RunConfiguration) {
	logger.AddToContext(ctx,
		logger.Bool(logger.FieldProxyURLSet, cfg.ProxyURL != nil && *cfg.ProxyURL != ""),
		logger.Bool(logger.FieldProxyLocSet, cfg.ProxyLocation != nil),
		logger.Bool(logger.FieldModelSet, cfg.ModelID != nil || cfg.ModelAPIKey != nil),
	)
}
