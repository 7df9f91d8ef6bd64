// Package servicemanager runs the gateway's long running services. Services are
// initialised as they are added, started one after the other in the order they
// were added, stopped in reverse order, and their health is merged into the
// report served on the daemon's health port.
package servicemanager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/blockparty-sh/cpp-slp-graph-search/util/health"
	"golang.org/x/sync/errgroup"
)

const (
	// startTimeout bounds how long a service waits for the one added before it to start.
	startTimeout = 5 * time.Second

	// stopTimeout bounds each Service.Stop during shutdown.
	stopTimeout = 5 * time.Second
)

type managedService struct {
	name    string
	service Service
	started chan struct{} // closed right before Start is called
	ready   chan struct{} // closed by the service itself
}

func (ms *managedService) isReady() bool {
	select {
	case <-ms.ready:
		return true
	default:
		return false
	}
}

// ServiceManager owns the services of one daemon run. Ctx is cancelled by
// ForceShutdown, by SIGINT or SIGTERM, and as soon as any service fails.
type ServiceManager struct {
	Ctx        context.Context
	cancelFunc context.CancelFunc
	g          *errgroup.Group
	logger     ulogger.Logger

	mu       sync.Mutex
	services []*managedService
}

func NewServiceManager(ctx context.Context, logger ulogger.Logger) *ServiceManager {
	ctx, cancelFunc := context.WithCancel(ctx)
	g, gCtx := errgroup.WithContext(ctx)

	sm := &ServiceManager{
		Ctx:        gCtx,
		cancelFunc: cancelFunc,
		g:          g,
		logger:     logger,
	}

	signalCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCtx.Done()
		stopSignals()

		if ctx.Err() == nil {
			sm.logger.Infof("[ServiceManager] received shutdown signal, stopping services")
			cancelFunc()
		}
	}()

	return sm
}

// AddService initialises service and schedules it to start once the previously
// added service has started. An Init error is returned and the service is not
// registered.
func (sm *ServiceManager) AddService(name string, service Service) error {
	sm.logger.Infof("[ServiceManager] initialising %s", name)

	if err := service.Init(sm.Ctx); err != nil {
		return errors.NewServiceError("[ServiceManager] %s failed to initialise", name, err)
	}

	ms := &managedService{
		name:    name,
		service: service,
		started: make(chan struct{}),
		ready:   make(chan struct{}),
	}

	sm.mu.Lock()

	var previous *managedService
	if len(sm.services) > 0 {
		previous = sm.services[len(sm.services)-1]
	}

	sm.services = append(sm.services, ms)
	sm.mu.Unlock()

	sm.g.Go(func() error {
		if previous != nil {
			select {
			case <-previous.started:
			case <-sm.Ctx.Done():
				return nil
			case <-time.After(startTimeout):
				return errors.NewServiceError("[ServiceManager] %s timed out waiting for %s to start", name, previous.name)
			}
		}

		close(ms.started)

		sm.logger.Infof("[ServiceManager] starting %s", name)

		if err := service.Start(sm.Ctx, ms.ready); err != nil {
			sm.logger.Errorf("[ServiceManager] %s failed: %v", name, err)
			return err
		}

		return nil
	})

	return nil
}

func (sm *ServiceManager) snapshot() []*managedService {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return append([]*managedService(nil), sm.services...)
}

// WaitForServiceToBeReady blocks until every service added so far is ready. It
// gives up with a context error when Ctx is cancelled first.
func (sm *ServiceManager) WaitForServiceToBeReady() error {
	for _, ms := range sm.snapshot() {
		select {
		case <-ms.ready:
			sm.logger.Infof("[ServiceManager] %s is ready", ms.name)
		case <-sm.Ctx.Done():
			return errors.NewContextCanceledError("[ServiceManager] stopped before %s was ready", ms.name, sm.Ctx.Err())
		}
	}

	return nil
}

// ServicesNotReady returns the names of the services that have not signalled
// readiness yet, in the order they were added.
func (sm *ServiceManager) ServicesNotReady() []string {
	var names []string

	for _, ms := range sm.snapshot() {
		if !ms.isReady() {
			names = append(names, ms.name)
		}
	}

	return names
}

func (sm *ServiceManager) ForceShutdown() {
	sm.cancelFunc()
}

// Wait blocks until every service has returned, then stops them in reverse
// order. It returns the first service error; a plain cancellation is not one.
func (sm *ServiceManager) Wait() error {
	err := sm.g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		sm.logger.Errorf("[ServiceManager] shutting down after error: %v", err)
	}

	services := sm.snapshot()

	for i := len(services) - 1; i >= 0; i-- {
		ms := services[i]

		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)

		if stopErr := ms.service.Stop(stopCtx); stopErr != nil {
			sm.logger.Warnf("[ServiceManager] %s did not stop cleanly: %v", ms.name, stopErr)
		} else {
			sm.logger.Infof("[ServiceManager] %s stopped", ms.name)
		}

		cancel()
	}

	sm.logger.Infof("[ServiceManager] all services stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// HealthHandler merges the health of every service into one indented report.
// For readiness a service that has not signalled ready yet is reported as 503
// without asking it.
func (sm *ServiceManager) HealthHandler(ctx context.Context, checkLiveness bool) (int, string, error) {
	services := sm.snapshot()
	checks := make([]health.Check, 0, len(services))

	for _, ms := range services {
		checks = append(checks, health.Check{Name: ms.name, Check: sm.serviceCheck(ms)})
	}

	report := health.Run(ctx, checkLiveness, checks)

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return http.StatusInternalServerError, "", errors.NewProcessingError("[ServiceManager] could not encode health report", err)
	}

	return report.Status, string(body), nil
}

func (sm *ServiceManager) serviceCheck(ms *managedService) health.CheckFunc {
	return func(ctx context.Context, checkLiveness bool) (int, string, error) {
		if !checkLiveness && !ms.isReady() {
			return http.StatusServiceUnavailable, fmt.Sprintf("%s is not ready", ms.name), nil
		}

		return ms.service.Health(ctx, checkLiveness)
	}
}
