package service

import (
	"context"
	"time"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/Totarae/LinkInBio/internal/repositories"
	"github.com/Totarae/LinkInBio/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClickContext — данные запроса, сопровождающие клик.
type ClickContext struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

// ClickService — путь записи аналитики: журнал событий плюс
// денормализованный счётчик на ссылке.
type ClickService struct {
	Links   repositories.LinkRepositoryInterface
	Clicks  repositories.ClickRepositoryInterface
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewClickService создаёт ClickService. Timeout ограничивает ожидание
// записи: ответ страницы не должен ждать аналитику дольше.
func NewClickService(links repositories.LinkRepositoryInterface, clicks repositories.ClickRepositoryInterface, logger *zap.Logger, timeout time.Duration) *ClickService {
	return &ClickService{Links: links, Clicks: clicks, Logger: logger, Timeout: timeout}
}

// RecordClick записывает одно событие клика и увеличивает счётчик ссылки.
//
// Любой сбой (БД недоступна, ссылка не существует, таймаут) поглощается:
// наружу уходит {success:false} и строка в лог, ошибка вызывающему не
// пробрасывается никогда. Повторов нет — недосчитать клик допустимо,
// пересчитать из-за слепого ретрая нельзя.
func (s *ClickService) RecordClick(ctx context.Context, linkID string, req *model.TrackClickRequest, meta ClickContext) *model.TrackClickResponse {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	event := &model.ClickEvent{
		ID:         uuid.NewString(),
		LinkID:     linkID,
		ClickedAt:  time.Now(),
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Referrer:   util.NormalizeReferrer(meta.Referrer),
		DeviceType: util.DetectDevice(meta.UserAgent),
	}
	if req != nil {
		event.Country = req.Country
		if req.Device != "" {
			event.DeviceType = req.Device
		}
	}

	if err := s.Clicks.Insert(ctx, event); err != nil {
		s.Logger.Warn("Событие клика не записано",
			zap.String("link_id", linkID),
			zap.Error(apperror.Record(err)),
		)
		return &model.TrackClickResponse{Success: false, Error: "click was not recorded"}
	}

	// Счётчик и журнал пишутся без общей транзакции: счётчик — кэш
	// журнала, расхождение чинит Reconcile.
	if err := s.Links.IncrementClicks(ctx, linkID); err != nil {
		s.Logger.Warn("Счётчик кликов не обновлён",
			zap.String("link_id", linkID),
			zap.Error(apperror.Record(err)),
		)
		return &model.TrackClickResponse{Success: false, Error: "click was not recorded"}
	}

	return &model.TrackClickResponse{Success: true}
}

// Reconcile пересчитывает счётчики кликов из журнала событий.
// Возвращает число ссылок, у которых счётчик разошёлся с журналом.
func (s *ClickService) Reconcile(ctx context.Context) (int64, error) {
	fixed, err := s.Links.ReconcileClicks(ctx)
	if err != nil {
		return 0, err
	}
	if fixed > 0 {
		s.Logger.Info("Счётчики кликов сверены с журналом", zap.Int64("fixed", fixed))
	}
	return fixed, nil
}
