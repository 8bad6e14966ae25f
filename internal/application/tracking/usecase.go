// Package tracking registra la actividad de navegación sobre publicaciones
// (clicks de la vidriera y del dashboard). Cada click incrementa un contador
// caliente en Redis y se persiste en la tabla durable para los reportes.
package tracking

import (
	"context"
	"time"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

// ClickCounter contador caliente de clicks. Lo implementa redisclient.ClickStore.
// La lectura del contador es del lado de reportes; acá solo se incrementa.
type ClickCounter interface {
	Incr(ctx context.Context, modulo, publicacionID string) error
}

// TrackingUseCase registro de clicks.
type TrackingUseCase struct {
	clicks  repository.ClickRepository
	counter ClickCounter
	log     *logger.Logger
}

// NewTrackingUseCase construye el caso de uso.
func NewTrackingUseCase(clicks repository.ClickRepository, counter ClickCounter, log *logger.Logger) *TrackingUseCase {
	return &TrackingUseCase{clicks: clicks, counter: counter, log: log}
}

// RegistrarClick persiste el evento y sube el contador caliente.
// userID es nulo para visitantes anónimos. Un fallo de Redis no voltea el
// request: el dato durable ya quedó en la DB y el contador es best-effort.
func (uc *TrackingUseCase) RegistrarClick(ctx context.Context, userID *int64, in dto.RegistrarClickRequest) error {
	if _, ok := policy.ModuleByName(in.Modulo); !ok {
		return domain.ErrInvalidInput
	}
	c := &entity.Click{
		Modulo:        in.Modulo,
		PublicacionID: in.PublicacionID,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}
	if err := uc.clicks.Insert(ctx, c); err != nil {
		return err
	}
	if err := uc.counter.Incr(ctx, in.Modulo, in.PublicacionID); err != nil {
		uc.log.Warn().Err(err).Str("modulo", in.Modulo).Msg("contador de clicks en Redis no disponible")
	}
	return nil
}
