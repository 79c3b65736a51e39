package scheduler

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/clock"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
	"github.com/kelolalabs/kelola/internal/reportcache"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
)

// Scheduler runs maintenance jobs against the database. Jobs are
// triggered from the CLI rather than a cron loop.
type Scheduler struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	cache *reportcache.Cache
}

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Cache *reportcache.Cache
}

func New(p Params) *Scheduler {
	return &Scheduler{
		db:    p.DB,
		log:   p.Log.Named("scheduler"),
		clock: p.Clock,
		cache: p.Cache,
	}
}

// SyncRoomStatuses reconciles room statuses with the rental table:
// a room with an active rental should be occupied, a room without one
// should be available. Rooms under maintenance are left alone, since
// that state is set by hand and does not follow from rentals.
func (s *Scheduler) SyncRoomStatuses(ctx context.Context) (int, error) {
	fixed := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activeRoomIDs []int64
		if err := tx.Model(&rentaldomain.Rental{}).
			Where("status = ?", rentaldomain.StatusActive).
			Distinct().
			Pluck("room_id", &activeRoomIDs).Error; err != nil {
			return err
		}

		occupied := make(map[int64]bool, len(activeRoomIDs))
		for _, id := range activeRoomIDs {
			occupied[id] = true
		}

		var rooms []roomdomain.Room
		if err := tx.Where("status <> ?", roomdomain.StatusMaintenance).
			Find(&rooms).Error; err != nil {
			return err
		}

		for _, room := range rooms {
			want := roomdomain.StatusAvailable
			if occupied[room.ID] {
				want = roomdomain.StatusOccupied
			}
			if room.Status == want {
				continue
			}

			if err := tx.Model(&roomdomain.Room{}).
				Where("id = ?", room.ID).
				Update("status", want).Error; err != nil {
				return err
			}

			s.log.Info("room status corrected",
				zap.Int64("room_id", room.ID),
				zap.String("from", string(room.Status)),
				zap.String("to", string(want)))
			fixed++
		}

		return nil
	})
	if err != nil {
		s.log.Error("room status sync failed", zap.Error(err))
		return 0, err
	}

	if fixed > 0 {
		s.cache.Bump(ctx, reportcache.CollectionRooms)
	}
	s.log.Info("room status sync completed", zap.Int("fixed", fixed))

	return fixed, nil
}

var Module = fx.Module("scheduler",
	fx.Provide(New),
)
