package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	// ChangesChannel carries "<kind>:<instance id>" after every write.
	ChangesChannel = "clinic:changes"

	// Timeout for a single collection reload
	refreshTimeout = 30 * time.Second
)

// SnapshotService is the snapshot hub: one feed per record collection, kept
// fresh by local writes, by change notifications from other instances and by
// a periodic full resync.
//
// Lifecycle: Start loads every feed and starts the listener and the cron job.
// Stop is safe to call multiple times.
type SnapshotService struct {
	Employees     *Feed[entity.Employee]
	Doctors       *Feed[entity.Doctor]
	Consultations *Feed[entity.Consultation]
	Users         *Feed[entity.User]

	redisClient *redis.Client
	log         *logrus.Logger
	instanceID  string
	resyncSpec  string

	cron   *cron.Cron
	pubsub *redis.PubSub

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewSnapshotService builds the feeds over store. redisClient may be nil, in
// which case changes are only applied locally.
func NewSnapshotService(store *repository.Store, redisClient *redis.Client, resyncSpec string, log *logrus.Logger) *SnapshotService {
	return &SnapshotService{
		Employees:     NewFeed(store.Employees.List),
		Doctors:       NewFeed(store.Doctors.List),
		Consultations: NewFeed(store.Consultations.List),
		Users:         NewFeed(store.Users.List),
		redisClient:   redisClient,
		log:           log,
		instanceID:    uuid.NewString(),
		resyncSpec:    resyncSpec,
		stopChan:      make(chan struct{}),
	}
}

// Start performs the initial load and should run before accepting traffic.
func (s *SnapshotService) Start(ctx context.Context) error {
	if err := s.RefreshAll(ctx); err != nil {
		return fmt.Errorf("initial snapshot load: %w", err)
	}

	if s.redisClient != nil {
		pubsub := s.redisClient.Subscribe(ctx, ChangesChannel)
		if _, err := pubsub.Receive(ctx); err != nil {
			_ = pubsub.Close()
			return fmt.Errorf("subscribe to %s: %w", ChangesChannel, err)
		}
		s.pubsub = pubsub

		s.wg.Add(1)
		go s.listen(pubsub.Channel())
	}

	if s.resyncSpec != "" {
		c := cron.New()
		if _, err := c.AddFunc(s.resyncSpec, s.resync); err != nil {
			return fmt.Errorf("invalid SNAPSHOT_RESYNC_SPEC %q: %w", s.resyncSpec, err)
		}
		c.Start()
		s.cron = c
	}

	s.log.WithFields(logrus.Fields{
		"instance": s.instanceID,
		"resync":   s.resyncSpec,
	}).Info("Snapshot hub started")
	return nil
}

// Stop halts the cron job and the listener, then closes every feed.
func (s *SnapshotService) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}

	close(s.stopChan)
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.log.Warnf("Failed to close change subscription: %+v", err)
		}
	}
	s.wg.Wait()

	s.Employees.Close()
	s.Doctors.Close()
	s.Consultations.Close()
	s.Users.Close()

	s.log.Info("SnapshotService stopped")
}

// RefreshAll reloads every collection, stopping at the first failure.
func (s *SnapshotService) RefreshAll(ctx context.Context) error {
	for _, kind := range entity.Kinds {
		if err := s.Refresh(ctx, kind); err != nil {
			return err
		}
	}
	return nil
}

// Refresh reloads one collection.
func (s *SnapshotService) Refresh(ctx context.Context, kind entity.Kind) error {
	var (
		version uint64
		count   int
		err     error
	)

	switch kind {
	case entity.KindEmployee:
		snap, e := s.Employees.Refresh(ctx)
		version, count, err = snap.Version, len(snap.Records), e
	case entity.KindDoctor:
		snap, e := s.Doctors.Refresh(ctx)
		version, count, err = snap.Version, len(snap.Records), e
	case entity.KindConsultation:
		snap, e := s.Consultations.Refresh(ctx)
		version, count, err = snap.Version, len(snap.Records), e
	case entity.KindUser:
		snap, e := s.Users.Refresh(ctx)
		version, count, err = snap.Version, len(snap.Records), e
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}

	if err != nil {
		s.log.Warnf("Failed to refresh %s snapshot: %+v", kind, err)
		return fmt.Errorf("refresh %s: %w", kind, err)
	}

	s.log.Debugf("Refreshed %s snapshot: version=%d, records=%d", kind, version, count)
	return nil
}

// NotifyChanged is called after every successful write. The local feed is
// refreshed synchronously; other instances are told through Redis. Failures
// are logged only, the periodic resync repairs them.
func (s *SnapshotService) NotifyChanged(ctx context.Context, kind entity.Kind) {
	_ = s.Refresh(ctx, kind)

	if s.redisClient == nil {
		return
	}
	payload := fmt.Sprintf("%s:%s", kind, s.instanceID)
	if err := s.redisClient.Publish(ctx, ChangesChannel, payload).Err(); err != nil {
		s.log.Warnf("Failed to publish %s change: %+v", kind, err)
	}
}

func (s *SnapshotService) listen(messages <-chan *redis.Message) {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Change listener stopping")
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			kind, origin, ok := parseChange(msg.Payload)
			if !ok {
				s.log.Warnf("Ignoring malformed change message %q", msg.Payload)
				continue
			}
			if origin == s.instanceID {
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			_ = s.Refresh(ctx, kind)
			cancel()
		}
	}
}

func (s *SnapshotService) resync() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout*time.Duration(len(entity.Kinds)))
	defer cancel()

	if err := s.RefreshAll(ctx); err != nil {
		s.log.Warnf("Periodic snapshot resync failed: %+v", err)
		return
	}
	s.log.Debug("Periodic snapshot resync completed")
}

func parseChange(payload string) (entity.Kind, string, bool) {
	kind, origin, found := strings.Cut(payload, ":")
	if !found || !entity.Kind(kind).Valid() {
		return "", "", false
	}
	return entity.Kind(kind), origin, true
}
