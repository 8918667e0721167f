package services

import (
	"HomeBoxed/internal/config"
	"HomeBoxed/internal/repository"
	"errors"
	"fmt"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
	"time"
)

// Janitor purges soft-deleted boxes and items once they are older than the
// configured retention.
type Janitor struct {
	boxRepo       repository.BoxRepository
	itemRepo      repository.ItemRepository
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
	forced        sync.WaitGroup
	now           func() time.Time
}

func NewJanitorService(
	boxRepo repository.BoxRepository,
	itemRepo repository.ItemRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		boxRepo:       boxRepo,
		itemRepo:      itemRepo,
		logService:    logService,
		cleaning:      false,
		mutex:         sync.Mutex{},
		configuration: configuration,
		cron:          cron.New(),
		now:           time.Now,
	}
}

// CleanNow runs one purge synchronously and returns how many rows it removed.
func (j *Janitor) CleanNow() (int, error) {
	if !j.tryStart() {
		return 0, errors.New("cleaning is in progress")
	}
	defer j.finish()
	return j.startClean(true)
}

func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryStart() {
		return errors.New("cleaning is in progress")
	}

	j.forced.Add(1)
	go func() {
		defer j.forced.Done()
		defer j.finish()
		_, _ = j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() error {
	j.logService.Log.Debug("starting cleaning job")
	cronSchedule := j.configuration.Janitor.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.tryStart() {
			return
		}
		defer j.finish()
		_, _ = j.startClean(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return fmt.Errorf("invalid janitor schedule %q: %w", cronSchedule, err)
	}
	j.cron.Start()
	return nil
}

// StopClean stops the scheduler and waits for running jobs, scheduled or
// forced, to finish.
func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.forced.Wait()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) tryStart() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

func (j *Janitor) startClean(forced bool) (int, error) {
	cutoff := j.now().Add(-j.configuration.Janitor.Retention)
	logFields := logrus.Fields{
		"job":    "clean",
		"status": "start",
		"cron":   j.configuration.Janitor.Schedule,
	}
	if forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Debug("looking for deleted records")

	items, err := j.itemRepo.FindDeletedBefore(cutoff)
	if err != nil {
		return 0, j.failed("Failed to find deleted items", err)
	}
	boxes, err := j.boxRepo.FindDeletedBefore(cutoff)
	if err != nil {
		return 0, j.failed("Failed to find deleted boxes", err)
	}
	if len(items)+len(boxes) > 0 {
		j.logService.Log.WithFields(logFields).Info(fmt.Sprintf("Found %d items and %d boxes to purge", len(items), len(boxes)))
	}

	var deletedCount int
	for i := range items {
		if err := j.itemRepo.HardDelete(items[i].ID); err != nil {
			return deletedCount, j.failed("Failed to purge item", err)
		}
		deletedCount++
	}
	for i := range boxes {
		if err := j.boxRepo.HardDelete(boxes[i].ID); err != nil {
			return deletedCount, j.failed("Failed to purge box", err)
		}
		deletedCount++
	}
	if deletedCount > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  deletedCount,
		}).Info("cleaning job finished")
	}
	return deletedCount, nil
}

func (j *Janitor) failed(message string, err error) error {
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "error",
		"error":  err.Error(),
	}).Error(message)
	return fmt.Errorf("%s: %w", message, err)
}
